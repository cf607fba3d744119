// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for a category rename.
type UpdateCategoryInput struct {
	ID   uuid.UUID
	Name string
}

// UpdateCategoryOutput represents the output of a category rename.
type UpdateCategoryOutput struct {
	RepairedTransactions int64
}

// UpdateCategoryUseCase handles category rename logic. Transactions reference
// categories by name, so a rename must cascade to every referencing
// transaction.
type UpdateCategoryUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the rename and the cascade.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"name is required",
			domainerror.ErrMissingCategoryFields,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	if category.Name == input.Name {
		return &UpdateCategoryOutput{}, nil
	}

	exists, err := uc.categoryRepo.ExistsByNameAndType(ctx, input.Name, category.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTaken,
			"a category with this name already exists for this type",
			domainerror.ErrCategoryNameTaken,
		)
	}

	oldName := category.Name
	category.Name = input.Name
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	repaired, err := uc.transactionRepo.RenameCategory(ctx, oldName, input.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade category rename: %w", err)
	}

	slog.Info("Category renamed",
		"from", oldName,
		"to", input.Name,
		"repaired_transactions", repaired,
	)

	return &UpdateCategoryOutput{RepairedTransactions: repaired}, nil
}
