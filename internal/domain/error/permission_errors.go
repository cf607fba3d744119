// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Permission store domain errors.
var (
	// ErrPermissionMatrixLoad is returned when the stored matrix cannot be loaded.
	// Callers recover by falling back to the compiled-in defaults.
	ErrPermissionMatrixLoad = errors.New("failed to load permission matrix")

	// ErrPermissionPersist is returned when a permission update could not be
	// persisted. The authoritative matrix is reloaded from storage in response.
	ErrPermissionPersist = errors.New("failed to persist permission update")

	// ErrUnknownPermissionKey is returned when an update names an unknown
	// role, category, or action.
	ErrUnknownPermissionKey = errors.New("unknown role, category, or action")
)

// PermissionErrorCode defines error codes for permission store errors.
type PermissionErrorCode string

const (
	ErrCodePermissionMatrixLoad PermissionErrorCode = "PRM-010001"
	ErrCodePermissionPersist    PermissionErrorCode = "PRM-010002"
	ErrCodeUnknownPermissionKey PermissionErrorCode = "PRM-010003"
)
