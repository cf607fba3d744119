// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// GetSummaryInput selects the period the summary covers.
type GetSummaryInput struct {
	Mode  report.PeriodMode
	Year  int
	Month time.Month
}

// GetSummaryOutput carries the computed financial aggregates.
type GetSummaryOutput struct {
	Totals report.Totals
	Count  int
}

// GetSummaryUseCase computes the dashboard financial summary. All aggregation
// happens in memory over the full transaction list; the dataset is a single
// shop's books and stays small.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the requested period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if !report.IsValidPeriodMode(input.Mode) {
		return nil, domainerror.ErrInvalidPeriodMode
	}

	transactions, err := uc.transactionRepo.SelectAll(ctx, "date DESC, created_at DESC")
	if err != nil {
		return nil, err
	}

	scoped := report.FilterByPeriod(transactions, input.Mode, input.Year, input.Month)
	return &GetSummaryOutput{
		Totals: report.CalculateTotals(scoped),
		Count:  len(scoped),
	}, nil
}
