// Package order contains customer order use cases.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
)

// OrderOutput is the use case representation of an order.
type OrderOutput struct {
	Order *entity.Order
}

func validateOrderFields(name string, set entity.ProductSet, quantity decimal.Decimal, deliveryType entity.DeliveryType, deliveryAddress string) error {
	if name == "" {
		return domainerror.NewOrderError(
			domainerror.ErrCodeMissingOrderFields,
			"customer name is required",
			domainerror.ErrMissingOrderFields,
		)
	}
	if !entity.IsValidProductSet(set) {
		return domainerror.NewOrderError(
			domainerror.ErrCodeInvalidProductSet,
			"unknown product set",
			domainerror.ErrInvalidProductSet,
		)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return domainerror.NewOrderError(
			domainerror.ErrCodeMissingOrderFields,
			"quantity must be greater than zero",
			domainerror.ErrMissingOrderFields,
		)
	}
	switch deliveryType {
	case entity.DeliveryTypeDelivery:
		if deliveryAddress == "" {
			return domainerror.NewOrderError(
				domainerror.ErrCodeMissingDeliveryAddress,
				"delivery orders require a delivery address",
				domainerror.ErrMissingDeliveryAddress,
			)
		}
	case entity.DeliveryTypeSelfPickup:
	default:
		return domainerror.NewOrderError(
			domainerror.ErrCodeInvalidDeliveryType,
			"delivery type must be 'delivery' or 'selfPickup'",
			domainerror.ErrInvalidDeliveryType,
		)
	}
	return nil
}

func validDeliveryStatus(s entity.DeliveryStatus) bool {
	switch s {
	case entity.DeliveryStatusDelivered, entity.DeliveryStatusNotDelivered, entity.DeliveryStatusNotPickedUp:
		return true
	}
	return false
}

// enqueueNotification queues an email for the order's customer. Orders without
// an email address are silently skipped, and a queue failure never fails the
// order operation that produced it.
func enqueueNotification(ctx context.Context, queue adapter.NotificationQueueRepository, o *entity.Order, template entity.NotificationTemplate) {
	if queue == nil || o.CustomerEmail == "" {
		return
	}

	payload := map[string]string{
		"customer_name":   o.Name,
		"order_id":        o.ID.String(),
		"set":             string(o.Set),
		"quantity":        o.Quantity.String(),
		"order_date":      o.OrderDate.Format("2006-01-02"),
		"delivery_type":   string(o.DeliveryType),
		"delivery_status": string(o.DeliveryStatus),
	}
	if o.DeliveryDate != nil {
		payload["delivery_date"] = o.DeliveryDate.Format("2006-01-02")
	}
	if o.PickupDate != nil {
		payload["pickup_date"] = o.PickupDate.Format("2006-01-02")
	}
	if o.Time != "" {
		payload["time_slot"] = o.Time
	}

	job := entity.NewNotificationJob(o.CustomerEmail, template, payload)
	if err := queue.Create(ctx, job); err != nil {
		slog.Warn("Failed to enqueue order notification",
			"order_id", o.ID,
			"template", template,
			"error", err,
		)
	}
}

func normalizeOptionalDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := entity.NormalizeDate(*t)
	return &d
}
