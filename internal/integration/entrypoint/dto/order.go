// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	Name            string          `json:"name" binding:"required"`
	ContactNo       string          `json:"contactNo"`
	CustomerEmail   string          `json:"customerEmail"`
	OrderDate       string          `json:"orderDate" binding:"required"` // YYYY-MM-DD
	PickupDate      *string         `json:"pickupDate"`
	DeliveryDate    *string         `json:"deliveryDate"`
	Set             string          `json:"set" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Time            string          `json:"time"`
	DeliveryType    string          `json:"deliveryType" binding:"required,oneof=delivery selfPickup"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Remarks         string          `json:"remarks"`
}

// UpdateOrderRequest represents the request body for order update. Updates are
// full replacements, including both status fields.
type UpdateOrderRequest struct {
	Name            string          `json:"name" binding:"required"`
	ContactNo       string          `json:"contactNo"`
	CustomerEmail   string          `json:"customerEmail"`
	OrderDate       string          `json:"orderDate" binding:"required"` // YYYY-MM-DD
	PickupDate      *string         `json:"pickupDate"`
	DeliveryDate    *string         `json:"deliveryDate"`
	Set             string          `json:"set" binding:"required"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Time            string          `json:"time"`
	DeliveryType    string          `json:"deliveryType" binding:"required,oneof=delivery selfPickup"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PaymentStatus   string          `json:"paymentStatus" binding:"required"`
	DeliveryStatus  string          `json:"deliveryStatus" binding:"required"`
	Remarks         string          `json:"remarks"`
}

// OrderResponse represents an order in API responses.
type OrderResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ContactNo       string          `json:"contactNo,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	OrderDate       string          `json:"orderDate"`
	PickupDate      *string         `json:"pickupDate,omitempty"`
	DeliveryDate    *string         `json:"deliveryDate,omitempty"`
	Set             string          `json:"set"`
	Quantity        decimal.Decimal `json:"quantity"`
	Time            string          `json:"time,omitempty"`
	DeliveryType    string          `json:"deliveryType"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	PaymentStatus   string          `json:"paymentStatus"`
	DeliveryStatus  string          `json:"deliveryStatus"`
	Remarks         string          `json:"remarks,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderListResponse represents the response for listing orders.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ToOrderResponse converts a domain Order entity to an OrderResponse DTO.
func ToOrderResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID.String(),
		Name:            order.Name,
		ContactNo:       order.ContactNo,
		CustomerEmail:   order.CustomerEmail,
		OrderDate:       order.OrderDate.Format("2006-01-02"),
		PickupDate:      formatDatePtr(order.PickupDate),
		DeliveryDate:    formatDatePtr(order.DeliveryDate),
		Set:             string(order.Set),
		Quantity:        order.Quantity,
		Time:            order.Time,
		DeliveryType:    string(order.DeliveryType),
		DeliveryAddress: order.DeliveryAddress,
		PaymentStatus:   string(order.PaymentStatus),
		DeliveryStatus:  string(order.DeliveryStatus),
		Remarks:         order.Remarks,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToOrderListResponse converts a list of Order entities to OrderListResponse.
func ToOrderListResponse(orders []entity.Order) OrderListResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return OrderListResponse{
		Orders: responses,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}
