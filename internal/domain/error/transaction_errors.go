// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidPaymentMethod is returned when the payment method is invalid.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrNonPositiveAmount is returned when the amount is zero or negative.
	ErrNonPositiveAmount = errors.New("amount must be positive")

	// ErrNonPositiveQuantity is returned when the quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")

	// ErrUnknownCategory is returned when the transaction references a category
	// that does not exist for its type.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrMissingTransactionFields is returned when required fields are absent.
	ErrMissingTransactionFields = errors.New("missing required transaction fields")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidPaymentMethod     TransactionErrorCode = "TXN-010002"
	ErrCodeNonPositiveAmount        TransactionErrorCode = "TXN-010003"
	ErrCodeNonPositiveQuantity      TransactionErrorCode = "TXN-010004"
	ErrCodeUnknownCategory          TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010007"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
