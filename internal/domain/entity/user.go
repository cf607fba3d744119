// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents a user's role. The set is closed; roles are not extensible
// at runtime.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleManager       Role = "Manager"
	RoleUser          Role = "User"
)

// Roles lists every known role in a stable order.
var Roles = []Role{RoleAdministrator, RoleManager, RoleUser}

// IsValidRole reports whether name is a known role.
func IsValidRole(name Role) bool {
	for _, r := range Roles {
		if r == name {
			return true
		}
	}
	return false
}

// User represents an account in the Dapur Ledger system. Usernames are unique
// case-insensitively; the canonical form is lowercase.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string // bcrypt
	Role         Role
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new active User with the canonical lowercase username.
func NewUser(username, passwordHash string, role Role) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Username:     strings.ToLower(username),
		PasswordHash: passwordHash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
