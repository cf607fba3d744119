// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. Reads are wholesale: clients reload the collection after every
// mutation instead of patching in place.
type TransactionRepository interface {
	// SelectAll retrieves every transaction ordered by the given column
	// expression (e.g. "date DESC").
	SelectAll(ctx context.Context, orderBy string) ([]entity.Transaction, error)

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// Insert creates a new transaction.
	Insert(ctx context.Context, transaction *entity.Transaction) error

	// Update replaces all fields of an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByID removes a transaction.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// RenameCategory rewrites the category field of every transaction that
	// references oldName, returning the number of rows repaired.
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)

	// DeleteAll removes every transaction (data reset).
	DeleteAll(ctx context.Context) error
}
