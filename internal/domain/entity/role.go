// Package entity contains the core business objects of the project.
package entity

// Role is the role row attached to a user.
type Role struct {
	ID   int
	Name string
}

// Role names seeded by the initial migration.
const (
	RoleNameUser       = "user"
	RoleNameAdmin      = "admin"
	RoleNameSuperAdmin = "super_admin"
)

// BaseRoleID is the role every newly registered account receives.
const BaseRoleID = 1

// BaseRole returns the role assigned at registration.
func BaseRole() Role {
	return Role{ID: BaseRoleID, Name: RoleNameUser}
}

// IsZero reports whether the role was not loaded.
func (r Role) IsZero() bool {
	return r.ID == 0 && r.Name == ""
}
