// Package entities contains core business entities.
package entities

import "time"

// Role determines permission and visibility scope of a user.
type Role string

const (
	// RoleAdmin can see and edit everything.
	RoleAdmin Role = "admin"
	// RoleManager manages own projects and creates tasks.
	RoleManager Role = "manager"
	// RoleDeveloper works on tasks assigned to or created by them.
	RoleDeveloper Role = "developer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleDeveloper:
		return true
	}
	return false
}

// User is a domain representation of a team member.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	Avatar    string
	CreatedAt time.Time
}
