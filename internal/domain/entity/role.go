// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleBasic is the default role of every signed-up account.
	RoleBasic Role = "basic"
	// RoleContentAuthor writes content for the booking catalogue.
	RoleContentAuthor Role = "content-author"
	// RoleLeadAuthor supervises content authors.
	RoleLeadAuthor Role = "lead-author"
	// RoleAdministrator manages the platform.
	RoleAdministrator Role = "administrator"
)

// DefaultRole is assigned when an account is created.
const DefaultRole = RoleBasic

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBasic, RoleContentAuthor, RoleLeadAuthor, RoleAdministrator:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
