// Package admin contains user management and data reset use cases.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// CreateUserInput represents the input for user creation.
type CreateUserInput struct {
	Username string
	Password string
	Role     entity.Role
}

// CreateUserOutput represents the output of user creation.
type CreateUserOutput struct {
	User *UserOutput
}

// CreateUserUseCase handles administrator-driven user creation.
type CreateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewCreateUserUseCase creates a new CreateUserUseCase instance.
func NewCreateUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user creation.
func (uc *CreateUserUseCase) Execute(ctx context.Context, input CreateUserInput) (*CreateUserOutput, error) {
	if input.Username == "" {
		return nil, domainerror.ErrMissingUserFields
	}
	if !entity.IsValidRole(input.Role) {
		return nil, domainerror.ErrInvalidRole
	}
	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.ErrWeakPassword
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, domainerror.ErrUsernameTaken
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, hash, input.Role)
	if err := uc.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "username", user.Username, "role", user.Role)

	return &CreateUserOutput{User: toUserOutput(user)}, nil
}
