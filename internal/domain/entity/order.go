// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSet represents the product variant of a customer order.
type ProductSet string

const (
	ProductSetOrkid   ProductSet = "Orkid"
	ProductSetMelur   ProductSet = "Melur"
	ProductSetCempaka ProductSet = "Cempaka"
	ProductSetSambal  ProductSet = "Sambal"
)

// DeliveryType represents how an order reaches the customer.
type DeliveryType string

const (
	DeliveryTypeDelivery   DeliveryType = "delivery"
	DeliveryTypeSelfPickup DeliveryType = "selfPickup"
)

// PaymentStatus represents whether an order has been paid.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// DeliveryStatus represents the fulfilment state of an order.
type DeliveryStatus string

const (
	DeliveryStatusDelivered    DeliveryStatus = "Delivered"
	DeliveryStatusNotDelivered DeliveryStatus = "Not yet delivered"
	DeliveryStatusNotPickedUp  DeliveryStatus = "Not yet pickup"
)

// Order represents a customer order. Orders and income transactions are
// tracked independently; reconciling them is a manual bookkeeping step.
type Order struct {
	ID              uuid.UUID
	Name            string // customer name
	ContactNo       string
	CustomerEmail   string // optional, used for notifications when present
	OrderDate       time.Time
	PickupDate      *time.Time
	DeliveryDate    *time.Time
	Set             ProductSet
	Quantity        decimal.Decimal
	Time            string // requested pickup/delivery time slot
	DeliveryType    DeliveryType
	DeliveryAddress string
	PaymentStatus   PaymentStatus
	DeliveryStatus  DeliveryStatus
	Remarks         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrder creates a new Order entity with sensible initial statuses.
func NewOrder(name string, orderDate time.Time, set ProductSet, quantity decimal.Decimal, deliveryType DeliveryType) *Order {
	now := time.Now().UTC()

	status := DeliveryStatusNotDelivered
	if deliveryType == DeliveryTypeSelfPickup {
		status = DeliveryStatusNotPickedUp
	}

	return &Order{
		ID:             uuid.New(),
		Name:           name,
		OrderDate:      NormalizeDate(orderDate),
		Set:            set,
		Quantity:       quantity,
		DeliveryType:   deliveryType,
		PaymentStatus:  PaymentStatusUnpaid,
		DeliveryStatus: status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsValidProductSet reports whether the given set is a known product variant.
func IsValidProductSet(s ProductSet) bool {
	switch s {
	case ProductSetOrkid, ProductSetMelur, ProductSetCempaka, ProductSetSambal:
		return true
	}
	return false
}
