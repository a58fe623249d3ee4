package domain

// The three account roles. The role decides the caller's home destination
// and which routes admit them.
const (
	RoleUser       = "user"
	RoleStoreOwner = "store_owner"
	RoleAdmin      = "admin"
)

// KnownRole reports whether the role is one the gateway routes for.
func KnownRole(role string) bool {
	switch role {
	case RoleUser, RoleStoreOwner, RoleAdmin:
		return true
	}
	return false
}

// Identity is the signed-in account as decoded from the session token.
type Identity struct {
	ID   int
	Name string
	Role string
}
