// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a transaction update.
// Updates are full replacements: every field is overwritten.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Quantity      decimal.Decimal
	Category      string
	Description   string
	PaymentMethod entity.PaymentMethod
	Date          time.Time
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the full-replacement update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	quantity := input.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}

	if err := validateFields(ctx, uc.categoryRepo, input.Type, input.PaymentMethod, input.Amount, quantity, input.Category); err != nil {
		return nil, err
	}

	total := input.Amount.Mul(quantity)

	existing.Type = input.Type
	existing.Amount = input.Amount
	existing.Quantity = quantity
	existing.TotalAmount = &total
	existing.Category = input.Category
	existing.Description = input.Description
	existing.PaymentMethod = input.PaymentMethod
	existing.Date = entity.NormalizeDate(input.Date)
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toOutput(existing)}, nil
}
