// Package order contains customer order use cases.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CreateOrderInput represents the input for order creation.
type CreateOrderInput struct {
	Name            string
	ContactNo       string
	CustomerEmail   string
	OrderDate       time.Time
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	Set             entity.ProductSet
	Quantity        decimal.Decimal
	Time            string
	DeliveryType    entity.DeliveryType
	DeliveryAddress string
	Remarks         string
}

// CreateOrderUseCase handles order creation logic.
type CreateOrderUseCase struct {
	orderRepo         adapter.OrderRepository
	notificationQueue adapter.NotificationQueueRepository
}

// NewCreateOrderUseCase creates a new CreateOrderUseCase instance.
func NewCreateOrderUseCase(
	orderRepo adapter.OrderRepository,
	notificationQueue adapter.NotificationQueueRepository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:         orderRepo,
		notificationQueue: notificationQueue,
	}
}

// Execute performs the order creation. The initial delivery status follows the
// delivery type, and a confirmation email is queued when the customer left an
// email address.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*OrderOutput, error) {
	if err := validateOrderFields(input.Name, input.Set, input.Quantity, input.DeliveryType, input.DeliveryAddress); err != nil {
		return nil, err
	}

	order := entity.NewOrder(input.Name, input.OrderDate, input.Set, input.Quantity, input.DeliveryType)
	order.ContactNo = input.ContactNo
	order.CustomerEmail = input.CustomerEmail
	order.PickupDate = normalizeOptionalDate(input.PickupDate)
	order.DeliveryDate = normalizeOptionalDate(input.DeliveryDate)
	order.Time = input.Time
	order.DeliveryAddress = input.DeliveryAddress
	order.Remarks = input.Remarks

	if err := uc.orderRepo.Insert(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	enqueueNotification(ctx, uc.notificationQueue, order, entity.NotificationTemplateOrderConfirmation)

	return &OrderOutput{Order: order}, nil
}
