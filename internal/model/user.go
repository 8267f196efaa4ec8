package model

// User represents an application user record as stored in the `users`
// table. Passwords are stored as bcrypt hashes only; the hash is never
// serialized into responses.
type User struct {
	ID           int64  `json:"id"`          // users.id
	FirstName    string `json:"firstName"`   // users.first_name
	LastName     string `json:"lastName"`    // users.last_name
	Email        string `json:"email"`       // users.email (unique)
	PasswordHash string `json:"-"`           // users.password_hash
	PhoneNumber  string `json:"phoneNumber"` // users.phone_number
	Address      string `json:"address"`     // users.address
	IsAdmin      bool   `json:"isAdmin"`     // users.is_admin
}
