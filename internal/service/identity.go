package service

// Identity is the authenticated caller, resolved from the session by
// the middleware and passed explicitly into every workflow. Services
// never reach back into request state.
type Identity struct {
	UserID  int64
	IsAdmin bool
}
