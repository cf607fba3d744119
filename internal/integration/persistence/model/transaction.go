// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Type          string           `gorm:"type:varchar(10);not null;index"`
	Amount        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Quantity      decimal.Decimal  `gorm:"type:decimal(15,3);not null;default:1"`
	TotalAmount   *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Category      string           `gorm:"type:varchar(100);not null;index"`
	Description   string           `gorm:"type:varchar(255)"`
	PaymentMethod string           `gorm:"type:varchar(10);not null"`
	Date          time.Time        `gorm:"type:date;not null;index"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		Quantity:      m.Quantity,
		TotalAmount:   m.TotalAmount,
		Category:      m.Category,
		Description:   m.Description,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Date:          entity.NormalizeDate(m.Date),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		Quantity:      transaction.Quantity,
		TotalAmount:   transaction.TotalAmount,
		Category:      transaction.Category,
		Description:   transaction.Description,
		PaymentMethod: string(transaction.PaymentMethod),
		Date:          transaction.Date,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
