package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

func TestCalculateOrdersDataGroupsAndSorts(t *testing.T) {
	input := []entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 2, entity.PaymentMethodCash, "2024-01-05"),
		tx(entity.TransactionTypeIncome, "Direct Melur", 12, 5, entity.PaymentMethodOnline, "2024-01-06"),
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 1, entity.PaymentMethodCash, "2024-01-07"),
		tx(entity.TransactionTypeExpense, "Direct Orkid", 10, 9, entity.PaymentMethodCash, "2024-01-08"),
		tx(entity.TransactionTypeIncome, CategoryDelivery, 5, 4, entity.PaymentMethodCash, "2024-01-09"),
		tx(entity.TransactionTypeIncome, CategoryBalanceForward, 100, 1, entity.PaymentMethodCash, "2024-01-01"),
		tx(entity.TransactionTypeIncome, CategoryOther, 3, 7, entity.PaymentMethodCash, "2024-01-10"),
	}

	rows := CalculateOrdersData(input)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Category != "Direct Melur" || !rows[0].Quantity.Equal(decimal.NewFromInt(5)) {
		t.Errorf("rows[0] = %s/%s, want Direct Melur/5", rows[0].Category, rows[0].Quantity)
	}
	if rows[1].Category != "Direct Orkid" || !rows[1].Quantity.Equal(decimal.NewFromInt(3)) {
		t.Errorf("rows[1] = %s/%s, want Direct Orkid/3", rows[1].Category, rows[1].Quantity)
	}
}

func TestCalculateOrdersDataDefaultQuantity(t *testing.T) {
	missing := tx(entity.TransactionTypeIncome, "Direct Sambal", 8, 1, entity.PaymentMethodCash, "2024-01-05")
	missing.Quantity = decimal.Decimal{} // unset

	negative := tx(entity.TransactionTypeIncome, "Direct Sambal", 8, 1, entity.PaymentMethodCash, "2024-01-06")
	negative.Quantity = decimal.NewFromInt(-3)

	rows := CalculateOrdersData([]entity.Transaction{missing, negative})

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if !rows[0].Quantity.Equal(decimal.NewFromInt(2)) {
		t.Errorf("quantity = %s, want 2 (each invalid quantity counts as 1)", rows[0].Quantity)
	}
}

func TestCalculateOrdersDataStableTies(t *testing.T) {
	input := []entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Cempaka", 10, 3, entity.PaymentMethodCash, "2024-01-05"),
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 3, entity.PaymentMethodCash, "2024-01-06"),
		tx(entity.TransactionTypeIncome, "Direct Melur", 10, 3, entity.PaymentMethodCash, "2024-01-07"),
	}

	rows := CalculateOrdersData(input)

	want := []string{"Direct Cempaka", "Direct Orkid", "Direct Melur"}
	for i, category := range want {
		if rows[i].Category != category {
			t.Errorf("rows[%d] = %s, want %s (ties keep encounter order)", i, rows[i].Category, category)
		}
	}
}

func TestCalculateOrdersDataConservation(t *testing.T) {
	input := []entity.Transaction{
		tx(entity.TransactionTypeIncome, "Direct Orkid", 10, 2, entity.PaymentMethodCash, "2024-01-05"),
		tx(entity.TransactionTypeIncome, "Direct Melur", 12, 5, entity.PaymentMethodOnline, "2024-01-06"),
		tx(entity.TransactionTypeIncome, "Direct Sambal", 8, 1.5, entity.PaymentMethodCash, "2024-01-07"),
		tx(entity.TransactionTypeIncome, CategoryDelivery, 5, 4, entity.PaymentMethodCash, "2024-01-08"),
	}

	rows := CalculateOrdersData(input)

	var got decimal.Decimal
	for _, row := range rows {
		got = got.Add(row.Quantity)
	}

	// Sum of breakdown quantities equals the sum over non-excluded income
	// transactions.
	want := decimal.NewFromFloat(8.5)
	if !got.Equal(want) {
		t.Errorf("quantity sum = %s, want %s", got, want)
	}
}
