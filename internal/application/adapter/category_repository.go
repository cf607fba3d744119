// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// SelectAll retrieves every category ordered by the given column expression.
	SelectAll(ctx context.Context, orderBy string) ([]entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByType retrieves categories of one type ordered by sort order.
	FindByType(ctx context.Context, categoryType entity.CategoryType) ([]entity.Category, error)

	// ExistsByNameAndType checks name uniqueness within a type.
	ExistsByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (bool, error)

	// Insert creates a new category.
	Insert(ctx context.Context, category *entity.Category) error

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// SwapSortOrder atomically exchanges the sort orders of two categories of
	// the same type (adjacent-swap reorder).
	SwapSortOrder(ctx context.Context, a, b *entity.Category) error

	// DeleteByID removes a category.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// NextSortOrder returns the next dense sort order value for a type.
	NextSortOrder(ctx context.Context, categoryType entity.CategoryType) (int, error)

	// DeleteAll removes every category (data reset).
	DeleteAll(ctx context.Context) error
}
