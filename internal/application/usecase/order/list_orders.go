// Package order contains customer order use cases.
package order

import (
	"context"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/report"
)

// ListOrdersInput represents the input for listing orders. Period filtering is
// applied in memory against the order date.
type ListOrdersInput struct {
	Mode  report.PeriodMode
	Year  int
	Month time.Month
}

// ListOrdersOutput represents the output of listing orders.
type ListOrdersOutput struct {
	Orders []entity.Order
}

// ListOrdersUseCase handles listing orders logic.
type ListOrdersUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewListOrdersUseCase creates a new ListOrdersUseCase instance.
func NewListOrdersUseCase(orderRepo adapter.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute lists orders, most recent first.
func (uc *ListOrdersUseCase) Execute(ctx context.Context, input ListOrdersInput) (*ListOrdersOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = report.PeriodAll
	}
	if !report.IsValidPeriodMode(mode) {
		return nil, domainerror.ErrInvalidPeriodMode
	}

	orders, err := uc.orderRepo.SelectAll(ctx, "order_date DESC, created_at DESC")
	if err != nil {
		return nil, err
	}

	filtered := report.FilterOrdersByPeriod(orders, mode, input.Year, input.Month)
	return &ListOrdersOutput{Orders: filtered}, nil
}
