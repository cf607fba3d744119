// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// SelectAll retrieves every transaction ordered by the given column expression.
func (r *transactionRepository) SelectAll(ctx context.Context, orderBy string) ([]entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).Order(orderBy).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]entity.Transaction, len(models))
	for i := range models {
		transactions[i] = *models[i].ToEntity()
	}
	return transactions, nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Insert creates a new transaction in the database.
func (r *transactionRepository) Insert(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	return result.Error
}

// Update replaces all fields of an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(transactionModel)
	return result.Error
}

// DeleteByID removes a transaction.
func (r *transactionRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// RenameCategory updates the stored category name on every referencing
// transaction and returns the number of rows repaired.
func (r *transactionRepository) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("category = ?", oldName).
		Update("category", newName)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteAll removes every transaction.
func (r *transactionRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TransactionModel{})
	return result.Error
}
