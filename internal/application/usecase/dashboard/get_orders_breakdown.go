// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// GetOrdersBreakdownInput selects the period the breakdown covers.
type GetOrdersBreakdownInput struct {
	Mode  report.PeriodMode
	Year  int
	Month time.Month
}

// GetOrdersBreakdownOutput carries per-category quantity sums, descending.
type GetOrdersBreakdownOutput struct {
	Breakdown []report.CategoryQuantity
}

// GetOrdersBreakdownUseCase computes the income-by-category quantity breakdown
// shown on the dashboard.
type GetOrdersBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetOrdersBreakdownUseCase creates a new GetOrdersBreakdownUseCase instance.
func NewGetOrdersBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetOrdersBreakdownUseCase {
	return &GetOrdersBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown for the requested period.
func (uc *GetOrdersBreakdownUseCase) Execute(ctx context.Context, input GetOrdersBreakdownInput) (*GetOrdersBreakdownOutput, error) {
	if !report.IsValidPeriodMode(input.Mode) {
		return nil, domainerror.ErrInvalidPeriodMode
	}

	transactions, err := uc.transactionRepo.SelectAll(ctx, "date DESC, created_at DESC")
	if err != nil {
		return nil, err
	}

	scoped := report.FilterByPeriod(transactions, input.Mode, input.Year, input.Month)
	return &GetOrdersBreakdownOutput{
		Breakdown: report.CalculateOrdersData(scoped),
	}, nil
}
