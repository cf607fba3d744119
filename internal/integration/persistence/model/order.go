// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(100);not null"`
	ContactNo       string          `gorm:"type:varchar(30)"`
	CustomerEmail   string          `gorm:"type:varchar(255)"`
	OrderDate       time.Time       `gorm:"type:date;not null;index"`
	PickupDate      *time.Time      `gorm:"type:date"`
	DeliveryDate    *time.Time      `gorm:"type:date"`
	Set             string          `gorm:"type:varchar(20);not null"`
	Quantity        decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Time            string          `gorm:"type:varchar(50);column:time_slot"`
	DeliveryType    string          `gorm:"type:varchar(15);not null"`
	DeliveryAddress string          `gorm:"type:text"`
	PaymentStatus   string          `gorm:"type:varchar(10);not null"`
	DeliveryStatus  string          `gorm:"type:varchar(20);not null"`
	Remarks         string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	return &entity.Order{
		ID:              m.ID,
		Name:            m.Name,
		ContactNo:       m.ContactNo,
		CustomerEmail:   m.CustomerEmail,
		OrderDate:       entity.NormalizeDate(m.OrderDate),
		PickupDate:      m.PickupDate,
		DeliveryDate:    m.DeliveryDate,
		Set:             entity.ProductSet(m.Set),
		Quantity:        m.Quantity,
		Time:            m.Time,
		DeliveryType:    entity.DeliveryType(m.DeliveryType),
		DeliveryAddress: m.DeliveryAddress,
		PaymentStatus:   entity.PaymentStatus(m.PaymentStatus),
		DeliveryStatus:  entity.DeliveryStatus(m.DeliveryStatus),
		Remarks:         m.Remarks,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// OrderFromEntity creates an OrderModel from a domain Order entity.
func OrderFromEntity(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:              order.ID,
		Name:            order.Name,
		ContactNo:       order.ContactNo,
		CustomerEmail:   order.CustomerEmail,
		OrderDate:       order.OrderDate,
		PickupDate:      order.PickupDate,
		DeliveryDate:    order.DeliveryDate,
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
