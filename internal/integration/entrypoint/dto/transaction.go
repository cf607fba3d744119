// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dapur-ledger/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string          `json:"type" binding:"required,oneof=income expense"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	Category      string          `json:"category" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod" binding:"required,oneof=cash online"`
	Date          string          `json:"date" binding:"required"` // YYYY-MM-DD
}

// UpdateTransactionRequest represents the request body for transaction update.
// Updates are full replacements.
type UpdateTransactionRequest = CreateTransactionRequest

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Quantity      decimal.Decimal `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"paymentMethod"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:            output.ID.String(),
		Type:          string(output.Type),
		Amount:        output.Amount,
		Quantity:      output.Quantity,
		TotalAmount:   output.TotalAmount,
		Category:      output.Category,
		Description:   output.Description,
		PaymentMethod: string(output.PaymentMethod),
		Date:          output.Date.Format("2006-01-02"),
		CreatedAt:     output.CreatedAt,
		UpdatedAt:     output.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list of TransactionOutput to TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
