// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Order domain errors.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidProductSet is returned when the product set is not a known variant.
	ErrInvalidProductSet = errors.New("invalid product set")

	// ErrInvalidDeliveryType is returned when the delivery type is invalid.
	ErrInvalidDeliveryType = errors.New("invalid delivery type")

	// ErrInvalidOrderStatus is returned when the payment or delivery status is invalid.
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// ErrMissingOrderFields is returned when required fields are absent.
	ErrMissingOrderFields = errors.New("missing required order fields")

	// ErrMissingDeliveryAddress is returned when a delivery order has no address.
	ErrMissingDeliveryAddress = errors.New("delivery orders require an address")
)

// OrderErrorCode defines error codes for order errors.
type OrderErrorCode string

const (
	ErrCodeOrderNotFound          OrderErrorCode = "ORD-010001"
	ErrCodeInvalidProductSet      OrderErrorCode = "ORD-010002"
	ErrCodeInvalidDeliveryType    OrderErrorCode = "ORD-010003"
	ErrCodeInvalidOrderStatus     OrderErrorCode = "ORD-010004"
	ErrCodeMissingOrderFields     OrderErrorCode = "ORD-010005"
	ErrCodeMissingDeliveryAddress OrderErrorCode = "ORD-010006"
)

// OrderError represents an order error with code and message.
type OrderError struct {
	Code    OrderErrorCode
	Message string
	Err     error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError with the given code and message.
func NewOrderError(code OrderErrorCode, message string, err error) *OrderError {
	return &OrderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
