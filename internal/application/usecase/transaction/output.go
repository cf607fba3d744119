// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// TransactionOutput represents a single transaction in use case outputs.
type TransactionOutput struct {
	ID            uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Quantity      decimal.Decimal
	TotalAmount   decimal.Decimal
	Category      string
	Description   string
	PaymentMethod entity.PaymentMethod
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		Quantity:      t.Quantity,
		TotalAmount:   t.EffectiveTotal(),
		Category:      t.Category,
		Description:   t.Description,
		PaymentMethod: t.PaymentMethod,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// validateFields applies the shared create/update validation: known enums,
// positive amount and quantity, and a category that exists for the
// transaction's type. Validation failures never reach the repository.
func validateFields(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	txType entity.TransactionType,
	method entity.PaymentMethod,
	amount, quantity decimal.Decimal,
	category string,
) error {
	if txType != entity.TransactionTypeIncome && txType != entity.TransactionTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if method != entity.PaymentMethodCash && method != entity.PaymentMethodOnline {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method must be 'cash' or 'online'",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveAmount,
			"amount must be greater than zero",
			domainerror.ErrNonPositiveAmount,
		)
	}
	if !quantity.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNonPositiveQuantity,
			"quantity must be greater than zero",
			domainerror.ErrNonPositiveQuantity,
		)
	}
	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrMissingTransactionFields,
		)
	}

	categoryType := entity.CategoryTypeIncome
	if txType == entity.TransactionTypeExpense {
		categoryType = entity.CategoryTypeExpense
	}
	exists, err := categoryRepo.ExistsByNameAndType(ctx, category, categoryType)
	if err != nil {
		return err
	}
	if !exists {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnknownCategory,
			"category does not exist for this transaction type",
			domainerror.ErrUnknownCategory,
		)
	}

	return nil
}
