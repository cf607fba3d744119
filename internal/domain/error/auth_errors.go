// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	// The message is deliberately identical for both cases.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountInactive is returned when a deactivated account attempts to log in.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInvalidToken is returned when a token is malformed, expired, or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no token is supplied.
	ErrMissingToken = errors.New("authentication token is required")

	// ErrPermissionDenied is returned when the acting role lacks a permission.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrRateLimited is returned when too many login attempts are made.
	ErrRateLimited = errors.New("too many attempts")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeAccountInactive    AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010003"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010004"
	ErrCodePermissionDenied   AuthErrorCode = "AUTH-010005"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010006"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
