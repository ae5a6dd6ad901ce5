package models

import (
	"strings"

	"github.com/google/uuid"
)

// Role is an authorization role carried by the caller identity
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleClient Role = "CLIENT"
)

// User is the directory view of an account holder
type User struct {
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	ID        uuid.UUID `db:"id"`
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity is the authenticated caller as supplied by the identity provider
type Identity struct {
	Roles  []Role
	UserID uuid.UUID
}

// HasRole reports whether the identity carries role.
func (i Identity) HasRole(role Role) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the identity carries the ADMIN role.
func (i Identity) IsAdmin() bool {
	return i.HasRole(RoleAdmin)
}
