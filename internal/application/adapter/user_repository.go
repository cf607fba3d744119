// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// SelectAll retrieves every user ordered by the given column expression.
	SelectAll(ctx context.Context, orderBy string) ([]entity.User, error)

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username. Lookup is case-insensitive;
	// usernames are stored lowercase.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername checks case-insensitive username uniqueness.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Insert creates a new user.
	Insert(ctx context.Context, user *entity.User) error

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// DeleteByID removes a user.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteAllExcept removes every user except the sentinel (data reset keeps
	// the acting administrator).
	DeleteAllExcept(ctx context.Context, sentinelID uuid.UUID) error
}
