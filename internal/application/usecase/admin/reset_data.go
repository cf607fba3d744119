// Package admin contains user management and data reset use cases.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
)

// ResetDataInput identifies the administrator performing the reset. Their
// account survives; everything else goes.
type ResetDataInput struct {
	ActingUserID uuid.UUID
}

// ResetDataUseCase wipes all business data: transactions, categories, orders,
// and every user account except the acting administrator's.
type ResetDataUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	orderRepo       adapter.OrderRepository
	userRepo        adapter.UserRepository
}

// NewResetDataUseCase creates a new ResetDataUseCase instance.
func NewResetDataUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	orderRepo adapter.OrderRepository,
	userRepo adapter.UserRepository,
) *ResetDataUseCase {
	return &ResetDataUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		orderRepo:       orderRepo,
		userRepo:        userRepo,
	}
}

// Execute performs the reset.
func (uc *ResetDataUseCase) Execute(ctx context.Context, input ResetDataInput) error {
	if err := uc.transactionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	if err := uc.categoryRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	if err := uc.orderRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}
	if err := uc.userRepo.DeleteAllExcept(ctx, input.ActingUserID); err != nil {
		return fmt.Errorf("failed to delete users: %w", err)
	}

	slog.Warn("All business data reset", "acting_user_id", input.ActingUserID)
	return nil
}
