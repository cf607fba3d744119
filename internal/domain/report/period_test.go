package report

import (
	"testing"
	"time"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

func TestFilterByPeriod(t *testing.T) {
	jan2024 := tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 1, entity.PaymentMethodCash, "2024-01-15")
	feb2024 := tx(entity.TransactionTypeIncome, "Direct Melur", 10, 1, entity.PaymentMethodCash, "2024-02-10")
	jan2023 := tx(entity.TransactionTypeExpense, "Ingredients", 5, 1, entity.PaymentMethodCash, "2023-01-20")
	input := []entity.Transaction{feb2024, jan2023, jan2024}

	tests := []struct {
		name  string
		mode  PeriodMode
		year  int
		month time.Month
		want  []string
	}{
		{"all returns full input in order", PeriodAll, 0, 0, []string{"Direct Melur", "Ingredients", "Direct Orkid"}},
		{"yearly keeps matching year", PeriodYearly, 2024, 0, []string{"Direct Melur", "Direct Orkid"}},
		{"monthly keeps matching month", PeriodMonthly, 2024, time.January, []string{"Direct Orkid"}},
		{"monthly across years", PeriodMonthly, 2023, time.January, []string{"Ingredients"}},
		{"empty result", PeriodMonthly, 2025, time.June, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByPeriod(input, tt.mode, tt.year, tt.month)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transactions, want %d", len(got), len(tt.want))
			}
			for i, category := range tt.want {
				if got[i].Category != category {
					t.Errorf("got[%d].Category = %s, want %s", i, got[i].Category, category)
				}
			}
		})
	}
}

func TestFilterByPeriodDoesNotMutateInput(t *testing.T) {
	input := []entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 1, entity.PaymentMethodCash, "2024-01-15"),
		tx(entity.TransactionTypeIncome, "Direct Melur", 10, 1, entity.PaymentMethodCash, "2024-02-10"),
	}

	FilterByPeriod(input, PeriodMonthly, 2024, time.February)

	if input[0].Category != "Direct Orkid" || input[1].Category != "Direct Melur" {
		t.Error("input order changed")
	}
}

func TestIsValidPeriodMode(t *testing.T) {
	for _, mode := range []PeriodMode{PeriodAll, PeriodYearly, PeriodMonthly} {
		if !IsValidPeriodMode(mode) {
			t.Errorf("mode %q should be valid", mode)
		}
	}
	if IsValidPeriodMode(PeriodMode("weekly")) {
		t.Error("unknown mode should be invalid")
	}
}
