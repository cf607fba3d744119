// Package report implements the financial aggregation core: period-scoped
// totals over transaction lists and the per-category order breakdown. All
// functions are pure and never mutate their inputs.
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// Policy constants. The special-case categories are fixed bookkeeping
// conventions of the business, not configuration.
const (
	// CategoryBalanceForward carries last month's closing balance into the
	// current month. It is excluded from income and payment aggregates and
	// only feeds the cash/online opening balances.
	CategoryBalanceForward = "Balance From Last Month"

	// CategoryDelivery holds delivery fees collected from customers. Tracked
	// separately from product income.
	CategoryDelivery = "Delivery"

	// CategoryOther is a catch-all excluded from the order breakdown.
	CategoryOther = "Other"
)

// ownerKeyword marks personal (non-business) spending categories. Matching is
// case-insensitive substring.
const ownerKeyword = "ayien"

var ownerDrawKeywords = []string{"ayien withdraw", "ayien own expenses"}

// Totals holds every named aggregate over a transaction list. Each field is a
// filtered sum of effective totals (total_amount, falling back to amount).
type Totals struct {
	Income           decimal.Decimal
	BusinessExpenses decimal.Decimal
	Balance          decimal.Decimal

	CashIncome     decimal.Decimal
	OnlineIncome   decimal.Decimal
	CashExpenses   decimal.Decimal
	OnlineExpenses decimal.Decimal

	BalanceForwardCash   decimal.Decimal
	BalanceForwardOnline decimal.Decimal

	CashBalance    decimal.Decimal
	OnlineBalance  decimal.Decimal
	OnlinePayments decimal.Decimal
	CashTotal      decimal.Decimal

	AyienSpending decimal.Decimal
	DeliveryFees  decimal.Decimal
}

// CalculateTotals computes every aggregate over the given transactions.
// An empty input yields all-zero totals.
func CalculateTotals(transactions []entity.Transaction) Totals {
	var t Totals

	for i := range transactions {
		tx := &transactions[i]
		value := tx.EffectiveTotal()
		category := tx.Category
		lower := strings.ToLower(category)
		isIncome := tx.Type == entity.TransactionTypeIncome
		isExpense := tx.Type == entity.TransactionTypeExpense
		isCash := tx.PaymentMethod == entity.PaymentMethodCash
		isOnline := tx.PaymentMethod == entity.PaymentMethodOnline
		isBalanceForward := category == CategoryBalanceForward

		if isIncome {
			switch {
			case isBalanceForward:
				if isCash {
					t.BalanceForwardCash = t.BalanceForwardCash.Add(value)
				} else {
					t.BalanceForwardOnline = t.BalanceForwardOnline.Add(value)
				}
			case category == CategoryDelivery:
				t.DeliveryFees = t.DeliveryFees.Add(value)
			default:
				t.Income = t.Income.Add(value)
			}

			if !isBalanceForward {
				if isCash {
					t.CashIncome = t.CashIncome.Add(value)
				}
				if isOnline {
					t.OnlineIncome = t.OnlineIncome.Add(value)
					t.OnlinePayments = t.OnlinePayments.Add(value)
				}
			}
		}

		if isExpense {
			if !isOwnerDraw(lower) {
				t.BusinessExpenses = t.BusinessExpenses.Add(value)
			}
			if isCash {
				t.CashExpenses = t.CashExpenses.Add(value)
			}
			if isOnline {
				t.OnlineExpenses = t.OnlineExpenses.Add(value)
			}
		}

		// Net cash movement, both directions, excluding the carried balance.
		if isCash && !isBalanceForward {
			if isExpense {
				t.CashTotal = t.CashTotal.Sub(value)
			} else {
				t.CashTotal = t.CashTotal.Add(value)
			}
		}

		// Personal spending is tracked regardless of type.
		if strings.Contains(lower, ownerKeyword) {
			t.AyienSpending = t.AyienSpending.Add(value)
		}
	}

	t.Balance = t.Income.Sub(t.BusinessExpenses)
	t.CashBalance = t.BalanceForwardCash.Add(t.CashIncome).Sub(t.CashExpenses)
	t.OnlineBalance = t.BalanceForwardOnline.Add(t.OnlineIncome).Sub(t.OnlineExpenses)

	return t
}

// isOwnerDraw reports whether a lowercased category names personal draws that
// are excluded from business expenses.
func isOwnerDraw(lowerCategory string) bool {
	for _, kw := range ownerDrawKeywords {
		if strings.Contains(lowerCategory, kw) {
			return true
		}
	}
	return false
}
