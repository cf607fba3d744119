// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// ListTransactionsInput represents the input for listing transactions.
// Period fields are optional; the zero PeriodMode means "all".
type ListTransactionsInput struct {
	Period report.PeriodMode
	Year   int
	Month  time.Month
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions logic. The load is
// wholesale by design: clients re-fetch the collection after every mutation.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing, newest first, optionally scoped
// to a calendar period.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.SelectAll(ctx, "date DESC, created_at DESC")
	if err != nil {
		return nil, err
	}

	mode := input.Period
	if mode == "" {
		mode = report.PeriodAll
	}
	scoped := report.FilterByPeriod(transactions, mode, input.Year, input.Month)

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(scoped)),
	}
	for i := range scoped {
		output.Transactions[i] = toOutput(&scoped[i])
	}
	return output, nil
}
