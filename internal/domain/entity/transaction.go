// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// PaymentMethod represents how a transaction was settled.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

// Transaction represents a single bookkeeping entry in the Dapur Ledger system.
// Amount is the unit price; TotalAmount is persisted redundantly as
// Amount × Quantity and, when absent, Amount stands in for it.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal
	Quantity      decimal.Decimal
	TotalAmount   *decimal.Decimal
	Category      string
	Description   string
	PaymentMethod PaymentMethod
	Date          time.Time // calendar date, midnight UTC
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity with the total precomputed.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	quantity decimal.Decimal,
	category string,
	description string,
	paymentMethod PaymentMethod,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	total := amount.Mul(quantity)

	return &Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Amount:        amount,
		Quantity:      quantity,
		TotalAmount:   &total,
		Category:      category,
		Description:   description,
		PaymentMethod: paymentMethod,
		Date:          NormalizeDate(date),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// EffectiveTotal returns the value a transaction contributes to aggregates:
// TotalAmount when present, otherwise Amount (quantity implicitly 1).
func (t *Transaction) EffectiveTotal() decimal.Decimal {
	if t.TotalAmount != nil {
		return *t.TotalAmount
	}
	return t.Amount
}

// EffectiveQuantity returns the quantity used for order breakdowns.
// Non-positive or unset quantities count as 1.
func (t *Transaction) EffectiveQuantity() decimal.Decimal {
	if t.Quantity.IsPositive() {
		return t.Quantity
	}
	return decimal.NewFromInt(1)
}

// NormalizeDate strips the time-of-day component, pinning the calendar date
// to midnight UTC. Transaction dates are timezone-naive calendar dates.
func NormalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
