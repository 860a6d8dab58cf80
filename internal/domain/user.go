package domain

import "time"

// Role represents the access level of an authenticated user.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// Roles returns all known roles.
func Roles() []Role {
	return []Role{RoleUser, RoleManager, RoleAdmin}
}

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// UserProfile represents the authenticated user's account.
// Immutable from the client's perspective except via an explicit
// profile update that round-trips through the server.
type UserProfile struct {
	ID        string
	Username  string
	Email     string
	Role      Role
	CreatedAt time.Time
}
