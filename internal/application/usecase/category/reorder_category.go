// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// ReorderDirection says which way a category moves within its type.
type ReorderDirection string

const (
	ReorderUp   ReorderDirection = "up"
	ReorderDown ReorderDirection = "down"
)

// ReorderCategoryInput represents the input for a category reorder.
type ReorderCategoryInput struct {
	ID        uuid.UUID
	Direction ReorderDirection
}

// ReorderCategoryUseCase handles manual category reordering. Sort orders are
// dense per type, so a move is an adjacent swap with the neighbor.
type ReorderCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoryUseCase creates a new ReorderCategoryUseCase instance.
func NewReorderCategoryUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoryUseCase {
	return &ReorderCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the adjacent swap.
func (uc *ReorderCategoryUseCase) Execute(ctx context.Context, input ReorderCategoryInput) error {
	if input.Direction != ReorderUp && input.Direction != ReorderDown {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"direction must be 'up' or 'down'",
			domainerror.ErrMissingCategoryFields,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	siblings, err := uc.categoryRepo.FindByType(ctx, category.Type)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	index := -1
	for i := range siblings {
		if siblings[i].ID == category.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	neighbor := index - 1
	if input.Direction == ReorderDown {
		neighbor = index + 1
	}
	if neighbor < 0 || neighbor >= len(siblings) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryAtBoundary,
			"category is already at the boundary",
			domainerror.ErrCategoryAtBoundary,
		)
	}

	if err := uc.categoryRepo.SwapSortOrder(ctx, &siblings[index], &siblings[neighbor]); err != nil {
		return fmt.Errorf("failed to swap sort order: %w", err)
	}
	return nil
}
