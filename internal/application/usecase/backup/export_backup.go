// Package backup contains backup export and import use cases.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// Version is the backup envelope version accepted by import.
const Version = "1.0"

// UserRecord is a user in the backup envelope. Password hashes are redacted;
// imported users must have their passwords reset by an administrator.
type UserRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// Envelope is the JSON document produced by export and consumed by import.
type Envelope struct {
	Version      string               `json:"version"`
	ExportDate   time.Time            `json:"exportDate"`
	Transactions []entity.Transaction `json:"transactions"`
	Categories   []entity.Category    `json:"categories"`
	Users        []UserRecord         `json:"users"`
}

// ExportBackupUseCase produces a full JSON snapshot of the books.
type ExportBackupUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	userRepo        adapter.UserRepository
}

// NewExportBackupUseCase creates a new ExportBackupUseCase instance.
func NewExportBackupUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
) *ExportBackupUseCase {
	return &ExportBackupUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
	}
}

// Execute assembles the backup envelope.
func (uc *ExportBackupUseCase) Execute(ctx context.Context) (*Envelope, error) {
	transactions, err := uc.transactionRepo.SelectAll(ctx, "date ASC, created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}

	categories, err := uc.categoryRepo.SelectAll(ctx, "type ASC, sort_order ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to export categories: %w", err)
	}

	users, err := uc.userRepo.SelectAll(ctx, "created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}

	records := make([]UserRecord, len(users))
	for i, u := range users {
		records[i] = UserRecord{
			ID:        u.ID.String(),
			Username:  u.Username,
			Role:      string(u.Role),
			Active:    u.Active,
			CreatedAt: u.CreatedAt,
		}
	}

	return &Envelope{
		Version:      Version,
		ExportDate:   time.Now().UTC(),
		Transactions: transactions,
		Categories:   categories,
		Users:        records,
	}, nil
}
