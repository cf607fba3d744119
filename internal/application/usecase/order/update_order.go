// Package order contains customer order use cases.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// UpdateOrderInput represents the input for a full order update.
type UpdateOrderInput struct {
	ID              uuid.UUID
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
	PaymentStatus   entity.PaymentStatus
	DeliveryStatus  entity.DeliveryStatus
	Remarks         string
}

// UpdateOrderUseCase handles order update logic. Updates are full replacements;
// a delivery status change queues an update email for the customer.
type UpdateOrderUseCase struct {
	orderRepo         adapter.OrderRepository
	notificationQueue adapter.NotificationQueueRepository
}

// NewUpdateOrderUseCase creates a new UpdateOrderUseCase instance.
func NewUpdateOrderUseCase(
	orderRepo adapter.OrderRepository,
	notificationQueue adapter.NotificationQueueRepository,
) *UpdateOrderUseCase {
	return &UpdateOrderUseCase{
		orderRepo:         orderRepo,
		notificationQueue: notificationQueue,
	}
}

// Execute performs the order update.
func (uc *UpdateOrderUseCase) Execute(ctx context.Context, input UpdateOrderInput) (*OrderOutput, error) {
	if err := validateOrderFields(input.Name, input.Set, input.Quantity, input.DeliveryType, input.DeliveryAddress); err != nil {
		return nil, err
	}
	if input.PaymentStatus != entity.PaymentStatusPaid && input.PaymentStatus != entity.PaymentStatusUnpaid {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"payment status must be 'Paid' or 'Unpaid'",
			domainerror.ErrInvalidOrderStatus,
		)
	}
	if !validDeliveryStatus(input.DeliveryStatus) {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeInvalidOrderStatus,
			"unknown delivery status",
			domainerror.ErrInvalidOrderStatus,
		)
	}

	order, err := uc.orderRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewOrderError(
			domainerror.ErrCodeOrderNotFound,
			"order not found",
			domainerror.ErrOrderNotFound,
		)
	}

	previousStatus := order.DeliveryStatus

	order.Name = input.Name
	order.ContactNo = input.ContactNo
	order.CustomerEmail = input.CustomerEmail
	order.OrderDate = entity.NormalizeDate(input.OrderDate)
	order.PickupDate = normalizeOptionalDate(input.PickupDate)
	order.DeliveryDate = normalizeOptionalDate(input.DeliveryDate)
	order.Set = input.Set
	order.Quantity = input.Quantity
	order.Time = input.Time
	order.DeliveryType = input.DeliveryType
	order.DeliveryAddress = input.DeliveryAddress
	order.PaymentStatus = input.PaymentStatus
	order.DeliveryStatus = input.DeliveryStatus
	order.Remarks = input.Remarks
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	if order.DeliveryStatus != previousStatus {
		enqueueNotification(ctx, uc.notificationQueue, order, entity.NotificationTemplateDeliveryUpdate)
	}

	return &OrderOutput{Order: order}, nil
}
