package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CategoryQuantity is one row of the order breakdown: a product category and
// the summed quantity sold.
type CategoryQuantity struct {
	Category string
	Quantity decimal.Decimal
}

// CalculateOrdersData groups income transactions by category and sums their
// quantities. The balance-forward, delivery, and catch-all categories are
// excluded. A missing or non-positive quantity counts as 1. Rows are sorted
// by quantity descending; ties keep encounter order (stable).
func CalculateOrdersData(transactions []entity.Transaction) []CategoryQuantity {
	sums := map[string]decimal.Decimal{}
	var order []string

	for i := range transactions {
		tx := &transactions[i]
		if tx.Type != entity.TransactionTypeIncome {
			continue
		}
		switch tx.Category {
		case CategoryBalanceForward, CategoryDelivery, CategoryOther:
			continue
		}

		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.EffectiveQuantity())
	}

	rows := make([]CategoryQuantity, 0, len(order))
	for _, category := range order {
		rows = append(rows, CategoryQuantity{Category: category, Quantity: sums[category]})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity.GreaterThan(rows[j].Quantity)
	})

	return rows
}
