// Package admin contains user management and data reset use cases.
package admin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// UserOutput is the use case representation of a user. Password hashes never
// leave the application layer.
type UserOutput struct {
	ID        uuid.UUID
	Username  string
	Role      entity.Role
	Active    bool
	LastLogin *time.Time
	CreatedAt time.Time
}

func toUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Active:    u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*UserOutput
}

// ListUsersUseCase handles listing users logic.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute lists all users, oldest account first.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.SelectAll(ctx, "created_at ASC")
	if err != nil {
		return nil, err
	}

	output := &ListUsersOutput{Users: make([]*UserOutput, len(users))}
	for i := range users {
		output.Users[i] = toUserOutput(&users[i])
	}
	return output, nil
}
