// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/report"
)

// SummaryResponse represents the dashboard financial summary.
type SummaryResponse struct {
	Income           decimal.Decimal `json:"income"`
	BusinessExpenses decimal.Decimal `json:"businessExpenses"`
	Balance          decimal.Decimal `json:"balance"`

	CashIncome     decimal.Decimal `json:"cashIncome"`
	OnlineIncome   decimal.Decimal `json:"onlineIncome"`
	CashExpenses   decimal.Decimal `json:"cashExpenses"`
	OnlineExpenses decimal.Decimal `json:"onlineExpenses"`

	BalanceForwardCash   decimal.Decimal `json:"balanceForwardCash"`
	BalanceForwardOnline decimal.Decimal `json:"balanceForwardOnline"`

	CashBalance    decimal.Decimal `json:"cashBalance"`
	OnlineBalance  decimal.Decimal `json:"onlineBalance"`
	OnlinePayments decimal.Decimal `json:"onlinePayments"`
	CashTotal      decimal.Decimal `json:"cashTotal"`

	AyienSpending decimal.Decimal `json:"ayienSpending"`
	DeliveryFees  decimal.Decimal `json:"deliveryFees"`

	TransactionCount int `json:"transactionCount"`
}

// OrdersBreakdownRow is one row of the orders breakdown.
type OrdersBreakdownRow struct {
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
}

// OrdersBreakdownResponse represents the per-category order quantity breakdown.
type OrdersBreakdownResponse struct {
	Breakdown []OrdersBreakdownRow `json:"breakdown"`
}

// ToSummaryResponse converts computed totals to a SummaryResponse DTO.
func ToSummaryResponse(totals report.Totals, count int) SummaryResponse {
	return SummaryResponse{
		Income:               totals.Income,
		BusinessExpenses:     totals.BusinessExpenses,
		Balance:              totals.Balance,
		CashIncome:           totals.CashIncome,
		OnlineIncome:         totals.OnlineIncome,
		CashExpenses:         totals.CashExpenses,
		OnlineExpenses:       totals.OnlineExpenses,
		BalanceForwardCash:   totals.BalanceForwardCash,
		BalanceForwardOnline: totals.BalanceForwardOnline,
		CashBalance:          totals.CashBalance,
		OnlineBalance:        totals.OnlineBalance,
		OnlinePayments:       totals.OnlinePayments,
		CashTotal:            totals.CashTotal,
		AyienSpending:        totals.AyienSpending,
		DeliveryFees:         totals.DeliveryFees,
		TransactionCount:     count,
	}
}

// ToOrdersBreakdownResponse converts breakdown rows to an OrdersBreakdownResponse DTO.
func ToOrdersBreakdownResponse(rows []report.CategoryQuantity) OrdersBreakdownResponse {
	breakdown := make([]OrdersBreakdownRow, len(rows))
	for i, row := range rows {
		breakdown[i] = OrdersBreakdownRow{
			Category: row.Category,
			Quantity: row.Quantity,
		}
	}
	return OrdersBreakdownResponse{
		Breakdown: breakdown,
	}
}
