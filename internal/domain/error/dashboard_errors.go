// Package error defines domain-specific errors for the Dapur Ledger application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidPeriodMode is returned when the period mode is not one of
	// all, yearly, or monthly.
	ErrInvalidPeriodMode = errors.New("invalid period mode")
)

// DashboardErrorCode defines error codes for dashboard errors.
type DashboardErrorCode string

const (
	ErrCodeInvalidPeriodMode DashboardErrorCode = "DSH-010001"
)
