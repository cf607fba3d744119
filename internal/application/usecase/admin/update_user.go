// Package admin contains user management and data reset use cases.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// UpdateUserInput represents a partial user update. Nil fields stay untouched.
type UpdateUserInput struct {
	ActingUserID uuid.UUID
	UserID       uuid.UUID
	Role         *entity.Role
	Active       *bool
	Password     *string
}

// UpdateUserOutput represents the output of a user update.
type UpdateUserOutput struct {
	User *UserOutput
}

// UpdateUserUseCase handles administrator-driven user updates: role changes,
// activation toggles, and password resets. Role and activation changes take
// effect on the user's next token refresh.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user update.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if input.Role != nil {
		if !entity.IsValidRole(*input.Role) {
			return nil, domainerror.ErrInvalidRole
		}
		user.Role = *input.Role
	}

	if input.Active != nil {
		if !*input.Active && input.UserID == input.ActingUserID {
			return nil, domainerror.ErrCannotDeactivateSelf
		}
		user.Active = *input.Active
	}

	if input.Password != nil {
		if err := uc.passwordService.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, domainerror.ErrWeakPassword
		}
		hash, err := uc.passwordService.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	slog.Info("User updated", "username", user.Username, "role", user.Role, "active", user.Active)

	return &UpdateUserOutput{User: toUserOutput(user)}, nil
}
