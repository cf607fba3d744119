// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Quantity      decimal.Decimal
	Category      string
	Description   string
	PaymentMethod entity.PaymentMethod
	Date          time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. The total is computed as
// amount × quantity and persisted redundantly.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	quantity := input.Quantity
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}

	if err := validateFields(ctx, uc.categoryRepo, input.Type, input.PaymentMethod, input.Amount, quantity, input.Category); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		quantity,
		input.Category,
		input.Description,
		input.PaymentMethod,
		input.Date,
	)

	if err := uc.transactionRepo.Insert(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toOutput(transaction)}, nil
}
