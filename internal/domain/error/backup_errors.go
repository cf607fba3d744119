// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Backup domain errors.
var (
	// ErrInvalidBackupPayload is returned when an import payload is malformed.
	ErrInvalidBackupPayload = errors.New("invalid backup payload")

	// ErrUnsupportedBackupVersion is returned when the backup version is unknown.
	ErrUnsupportedBackupVersion = errors.New("unsupported backup version")
)

// BackupErrorCode defines error codes for backup errors.
type BackupErrorCode string

const (
	ErrCodeInvalidBackupPayload     BackupErrorCode = "BKP-010001"
	ErrCodeUnsupportedBackupVersion BackupErrorCode = "BKP-010002"
)
