// Package backup contains backup export and import use cases.
package backup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// ImportBackupOutput reports what an import restored.
type ImportBackupOutput struct {
	Transactions int
	Categories   int
}

// ImportBackupUseCase restores transactions and categories from a backup
// envelope. Existing business data is replaced wholesale. Users are not
// restored; the envelope carries them redacted, for reference only.
type ImportBackupUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewImportBackupUseCase creates a new ImportBackupUseCase instance.
func NewImportBackupUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ImportBackupUseCase {
	return &ImportBackupUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute validates the envelope and replaces the stored books with it.
func (uc *ImportBackupUseCase) Execute(ctx context.Context, envelope *Envelope) (*ImportBackupOutput, error) {
	if envelope == nil {
		return nil, domainerror.ErrInvalidBackupPayload
	}
	if envelope.Version != Version {
		return nil, domainerror.ErrUnsupportedBackupVersion
	}
	for i := range envelope.Categories {
		c := &envelope.Categories[i]
		if c.Name == "" || (c.Type != entity.CategoryTypeIncome && c.Type != entity.CategoryTypeExpense) {
			return nil, domainerror.ErrInvalidBackupPayload
		}
	}
	for i := range envelope.Transactions {
		tx := &envelope.Transactions[i]
		if tx.Type != entity.TransactionTypeIncome && tx.Type != entity.TransactionTypeExpense {
			return nil, domainerror.ErrInvalidBackupPayload
		}
		if tx.PaymentMethod != entity.PaymentMethodCash && tx.PaymentMethod != entity.PaymentMethodOnline {
			return nil, domainerror.ErrInvalidBackupPayload
		}
	}

	if err := uc.transactionRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := uc.categoryRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear categories: %w", err)
	}

	for i := range envelope.Categories {
		if err := uc.categoryRepo.Insert(ctx, &envelope.Categories[i]); err != nil {
			return nil, fmt.Errorf("failed to restore category: %w", err)
		}
	}
	for i := range envelope.Transactions {
		if err := uc.transactionRepo.Insert(ctx, &envelope.Transactions[i]); err != nil {
			return nil, fmt.Errorf("failed to restore transaction: %w", err)
		}
	}

	slog.Info("Backup imported",
		"transactions", len(envelope.Transactions),
		"categories", len(envelope.Categories),
	)

	return &ImportBackupOutput{
		Transactions: len(envelope.Transactions),
		Categories:   len(envelope.Categories),
	}, nil
}
