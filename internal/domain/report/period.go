package report

import (
	"time"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// PeriodMode selects how FilterByPeriod scopes a transaction list.
type PeriodMode string

const (
	PeriodAll     PeriodMode = "all"
	PeriodYearly  PeriodMode = "yearly"
	PeriodMonthly PeriodMode = "monthly"
)

// IsValidPeriodMode reports whether mode is a known period mode.
func IsValidPeriodMode(mode PeriodMode) bool {
	switch mode {
	case PeriodAll, PeriodYearly, PeriodMonthly:
		return true
	}
	return false
}

// FilterByPeriod returns the transactions falling in the requested period.
// PeriodAll returns the input slice unchanged. PeriodYearly keeps calendar-year
// matches; PeriodMonthly additionally requires the calendar month (January = 1).
//
// Transaction dates are timezone-naive calendar dates stored at midnight UTC;
// the filter reads Year and Month of the stored instant directly. The input is
// never mutated and keeps its order.
func FilterByPeriod(transactions []entity.Transaction, mode PeriodMode, year int, month time.Month) []entity.Transaction {
	if mode == PeriodAll {
		return transactions
	}

	filtered := make([]entity.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.Date.Year() != year {
			continue
		}
		if mode == PeriodMonthly && tx.Date.Month() != month {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

// FilterOrdersByPeriod applies the same period scoping to orders, keyed on the
// order date.
func FilterOrdersByPeriod(orders []entity.Order, mode PeriodMode, year int, month time.Month) []entity.Order {
	if mode == PeriodAll {
		return orders
	}

	filtered := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderDate.Year() != year {
			continue
		}
		if mode == PeriodMonthly && o.OrderDate.Month() != month {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}
