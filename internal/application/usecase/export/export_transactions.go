// Package export contains CSV export use cases.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// transactionColumns is the fixed CSV column order.
var transactionColumns = []string{
	"Date", "Type", "Category", "Description", "Payment Method",
	"Amount", "Quantity", "Total",
}

// ExportTransactionsInput selects the period the export covers.
type ExportTransactionsInput struct {
	Mode  report.PeriodMode
	Year  int
	Month time.Month
}

// ExportTransactionsOutput carries the rendered CSV document.
type ExportTransactionsOutput struct {
	Filename string
	Data     []byte
}

// ExportTransactionsUseCase renders the transaction list as CSV.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute renders the CSV for the requested period, oldest entries first.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = report.PeriodAll
	}
	if !report.IsValidPeriodMode(mode) {
		return nil, domainerror.ErrInvalidPeriodMode
	}

	transactions, err := uc.transactionRepo.SelectAll(ctx, "date ASC, created_at ASC")
	if err != nil {
		return nil, err
	}
	scoped := report.FilterByPeriod(transactions, mode, input.Year, input.Month)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(transactionColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range scoped {
		tx := &scoped[i]
		row := []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			tx.Category,
			tx.Description,
			string(tx.PaymentMethod),
			tx.Amount.StringFixed(2),
			tx.Quantity.String(),
			tx.EffectiveTotal().StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &ExportTransactionsOutput{
		Filename: exportFilename("transactions", mode, input.Year, input.Month),
		Data:     buf.Bytes(),
	}, nil
}

func exportFilename(prefix string, mode report.PeriodMode, year int, month time.Month) string {
	switch mode {
	case report.PeriodYearly:
		return fmt.Sprintf("%s-%d.csv", prefix, year)
	case report.PeriodMonthly:
		return fmt.Sprintf("%s-%d-%02d.csv", prefix, year, int(month))
	}
	return prefix + ".csv"
}
