// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// User management domain errors.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the username is already registered
	// (comparison is case-insensitive).
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidRole is returned when the role is not one of the known roles.
	ErrInvalidRole = errors.New("invalid role")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrCannotDeactivateSelf is returned when an administrator tries to
	// deactivate their own account.
	ErrCannotDeactivateSelf = errors.New("cannot deactivate own account")

	// ErrMissingUserFields is returned when required fields are absent.
	ErrMissingUserFields = errors.New("missing required user fields")
)

// UserErrorCode defines error codes for user management errors.
type UserErrorCode string

const (
	ErrCodeUserNotFound         UserErrorCode = "USR-010001"
	ErrCodeUsernameTaken        UserErrorCode = "USR-010002"
	ErrCodeInvalidRole          UserErrorCode = "USR-010003"
	ErrCodeWeakPassword         UserErrorCode = "USR-010004"
	ErrCodeCannotDeactivateSelf UserErrorCode = "USR-010005"
	ErrCodeMissingUserFields    UserErrorCode = "USR-010006"
)
