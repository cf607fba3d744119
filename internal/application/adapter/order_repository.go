// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// OrderRepository defines the interface for customer order persistence operations.
type OrderRepository interface {
	// SelectAll retrieves every order ordered by the given column expression.
	SelectAll(ctx context.Context, orderBy string) ([]entity.Order, error)

	// FindByID retrieves an order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Insert creates a new order.
	Insert(ctx context.Context, order *entity.Order) error

	// Update replaces all fields of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	// DeleteByID removes an order.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every order (data reset).
	DeleteAll(ctx context.Context) error
}
