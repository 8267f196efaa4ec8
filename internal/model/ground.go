package model

// Ground represents a sports venue offered for booking as stored in
// the `grounds` table. Slots are created per ground and carry the
// actual availability information; the ground itself only holds
// descriptive attributes.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – display name of the venue.
//  Location    – human readable address or area.
//  SportType   – one of the SportTypes values.
//  Rating      – decimal rating as a string (e.g. "4.50").
//  Description – optional free text.
//  ImageURL    – optional image link.
type Ground struct {
	ID          int64   `json:"id"`          // grounds.id
	Name        string  `json:"name"`        // grounds.name
	Location    string  `json:"location"`    // grounds.location
	SportType   string  `json:"sportType"`   // grounds.sport_type
	Rating      string  `json:"rating"`      // grounds.rating
	Description *string `json:"description"` // grounds.description (nullable)
	ImageURL    *string `json:"imageUrl"`    // grounds.image_url (nullable)
}

// SportTypes enumerates the sports a ground can host.
var SportTypes = []string{
	"Cricket",
	"Football",
	"Basketball",
	"Badminton",
	"Tennis",
	"Volleyball",
	"Swimming",
	"Table Tennis",
}

// ValidSportType reports whether s is a known sport type.
func ValidSportType(s string) bool {
	for _, t := range SportTypes {
		if t == s {
			return true
		}
	}
	return false
}
