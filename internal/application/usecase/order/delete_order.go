// Package order contains customer order use cases.
package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// DeleteOrderInput represents the input for order deletion.
type DeleteOrderInput struct {
	ID uuid.UUID
}

// DeleteOrderUseCase handles order deletion logic.
type DeleteOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewDeleteOrderUseCase creates a new DeleteOrderUseCase instance.
func NewDeleteOrderUseCase(orderRepo adapter.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the order deletion.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, input DeleteOrderInput) error {
	if _, err := uc.orderRepo.FindByID(ctx, input.ID); err != nil {
		return domainerror.NewOrderError(
			domainerror.ErrCodeOrderNotFound,
			"order not found",
			domainerror.ErrOrderNotFound,
		)
	}

	if err := uc.orderRepo.DeleteByID(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
