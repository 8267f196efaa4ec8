package service

// Authorization predicates shared by all workflows. Routes apply the
// same rules ad hoc in the reference implementation; here every
// service entry point consumes these two checks.

// canActOnOwned allows the resource owner and any admin.
func canActOnOwned(ident Identity, ownerID int64) bool {
	return ident.IsAdmin || ident.UserID == ownerID
}

// adminOnly allows admins.
func adminOnly(ident Identity) bool {
	return ident.IsAdmin
}
