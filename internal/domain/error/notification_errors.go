// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrInvalidNotificationTemplate is returned for an unknown template type.
	ErrInvalidNotificationTemplate = errors.New("unknown notification template")
)

// NotificationErrorCode defines error codes for notification errors.
type NotificationErrorCode string

const (
	ErrCodeInvalidNotificationTemplate NotificationErrorCode = "NTF-010001"
	ErrCodeTemporaryDeliveryFailure    NotificationErrorCode = "NTF-010002"
	ErrCodePermanentDeliveryFailure    NotificationErrorCode = "NTF-010003"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
