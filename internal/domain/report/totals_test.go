package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

func tx(txType entity.TransactionType, category string, amount, quantity float64, method entity.PaymentMethod, date string) entity.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	a := decimal.NewFromFloat(amount)
	q := decimal.NewFromFloat(quantity)
	total := a.Mul(q)
	return entity.Transaction{
		Type:          txType,
		Amount:        a,
		Quantity:      q,
		TotalAmount:   &total,
		Category:      category,
		PaymentMethod: method,
		Date:          d,
	}
}

// txNoTotal builds a transaction with no persisted total, exercising the
// fall-back-to-amount path.
func txNoTotal(txType entity.TransactionType, category string, amount float64, method entity.PaymentMethod) entity.Transaction {
	t := tx(txType, category, amount, 1, method, "2024-01-01")
	t.TotalAmount = nil
	t.Quantity = decimal.Decimal{}
	return t
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(decimal.NewFromFloat(want)) {
		t.Errorf("%s = %s, want %v", name, got, want)
	}
}

func TestCalculateTotalsEmpty(t *testing.T) {
	totals := CalculateTotals(nil)

	zeroes := map[string]decimal.Decimal{
		"income":           totals.Income,
		"businessExpenses": totals.BusinessExpenses,
		"balance":          totals.Balance,
		"cashBalance":      totals.CashBalance,
		"onlineBalance":    totals.OnlineBalance,
		"onlinePayments":   totals.OnlinePayments,
		"cashTotal":        totals.CashTotal,
		"ayienSpending":    totals.AyienSpending,
		"deliveryFees":     totals.DeliveryFees,
	}
	for name, v := range zeroes {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0", name, v)
		}
	}
}

func TestCalculateTotalsSingleCashSale(t *testing.T) {
	totals := CalculateTotals([]entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 2, entity.PaymentMethodCash, "2024-01-05"),
	})

	assertDecimal(t, "income", totals.Income, 20)
	assertDecimal(t, "cashTotal", totals.CashTotal, 20)
	assertDecimal(t, "cashIncome", totals.CashIncome, 20)
	assertDecimal(t, "businessExpenses", totals.BusinessExpenses, 0)
	assertDecimal(t, "balance", totals.Balance, 20)
	assertDecimal(t, "cashBalance", totals.CashBalance, 20)
	assertDecimal(t, "onlineBalance", totals.OnlineBalance, 0)
}

func TestCalculateTotalsDeliveryFees(t *testing.T) {
	totals := CalculateTotals([]entity.Transaction{
		tx(entity.TransactionTypeIncome, CategoryDelivery, 5, 1, entity.PaymentMethodCash, "2024-01-05"),
	})

	assertDecimal(t, "deliveryFees", totals.DeliveryFees, 5)
	assertDecimal(t, "income", totals.Income, 0)
	// Delivery fees are still money received.
	assertDecimal(t, "cashIncome", totals.CashIncome, 5)
}

func TestCalculateTotalsBalanceForward(t *testing.T) {
	totals := CalculateTotals([]entity.Transaction{
		tx(entity.TransactionTypeIncome, CategoryBalanceForward, 100, 1, entity.PaymentMethodCash, "2024-02-01"),
		tx(entity.TransactionTypeIncome, CategoryBalanceForward, 250, 1, entity.PaymentMethodOnline, "2024-02-01"),
		tx(entity.TransactionTypeIncome, "Direct Melur", 30, 1, entity.PaymentMethodOnline, "2024-02-03"),
		tx(entity.TransactionTypeExpense, "Ingredients", 40, 1, entity.PaymentMethodCash, "2024-02-04"),
	})

	assertDecimal(t, "income", totals.Income, 30)
	assertDecimal(t, "balanceForwardCash", totals.BalanceForwardCash, 100)
	assertDecimal(t, "balanceForwardOnline", totals.BalanceForwardOnline, 250)
	// Carried balance never counts as a payment or cash movement.
	assertDecimal(t, "onlinePayments", totals.OnlinePayments, 30)
	assertDecimal(t, "cashTotal", totals.CashTotal, -40)
	// Opening balances feed the running balances.
	assertDecimal(t, "cashBalance", totals.CashBalance, 60)      // 100 + 0 - 40
	assertDecimal(t, "onlineBalance", totals.OnlineBalance, 280) // 250 + 30 - 0
}

func TestCalculateTotalsOwnerSpending(t *testing.T) {
	totals := CalculateTotals([]entity.Transaction{
		tx(entity.TransactionTypeExpense, "Ayien Withdraw", 50, 1, entity.PaymentMethodCash, "2024-03-01"),
		tx(entity.TransactionTypeExpense, "ayien own expenses - petrol", 20, 1, entity.PaymentMethodOnline, "2024-03-02"),
		tx(entity.TransactionTypeExpense, "Packaging", 15, 1, entity.PaymentMethodCash, "2024-03-03"),
		tx(entity.TransactionTypeIncome, "Ayien Top Up", 10, 1, entity.PaymentMethodCash, "2024-03-04"),
	})

	// Owner draws are excluded from business expenses, case-insensitively.
	assertDecimal(t, "businessExpenses", totals.BusinessExpenses, 15)
	// But all "ayien" categories count toward personal spending, any type.
	assertDecimal(t, "ayienSpending", totals.AyienSpending, 80)
	// Cash expenses still include the draws; they are real cash out.
	assertDecimal(t, "cashExpenses", totals.CashExpenses, 65)
	assertDecimal(t, "cashTotal", totals.CashTotal, -55) // -50 -15 +10
}

func TestCalculateTotalsMissingTotalFallsBackToAmount(t *testing.T) {
	totals := CalculateTotals([]entity.Transaction{
		txNoTotal(entity.TransactionTypeIncome, "Direct Cempaka", 12.5, entity.PaymentMethodOnline),
	})

	assertDecimal(t, "income", totals.Income, 12.5)
	assertDecimal(t, "onlinePayments", totals.OnlinePayments, 12.5)
}

func TestCalculateTotalsDoesNotMutateInput(t *testing.T) {
	input := []entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 2, entity.PaymentMethodCash, "2024-01-05"),
	}
	before := input[0]

	CalculateTotals(input)

	if !input[0].Amount.Equal(before.Amount) || input[0].Category != before.Category {
		t.Error("input slice was mutated")
	}
}
