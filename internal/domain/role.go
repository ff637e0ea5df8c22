package domain

// Role is the closed set of user roles
type Role string

// Supported roles
const (
	RoleAdmin   Role = "ADMIN"   // Read-only analytics access
	RoleManager Role = "MANAGER" // Full operational access
)

// Valid reports whether r is one of the supported roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager:
		return true
	}
	return false
}

// RolePassword returns the fixed signup password required for a role.
// Each role has exactly one valid password; signup with anything else is
// rejected. The ok result is false for unknown roles.
func RolePassword(r Role) (string, bool) {
	switch r {
	case RoleAdmin:
		return "admin123", true
	case RoleManager:
		return "manager123", true
	}
	return "", false
}
