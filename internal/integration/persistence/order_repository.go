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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// SelectAll retrieves every order ordered by the given column expression.
func (r *orderRepository) SelectAll(ctx context.Context, orderBy string) ([]entity.Order, error) {
	var models []model.OrderModel
	result := r.db.WithContext(ctx).Order(orderBy).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]entity.Order, len(models))
	for i := range models {
		orders[i] = *models[i].ToEntity()
	}
	return orders, nil
}

// FindByID retrieves an order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// Insert creates a new order in the database.
func (r *orderRepository) Insert(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderFromEntity(order)
	result := r.db.WithContext(ctx).Create(orderModel)
	return result.Error
}

// Update replaces all fields of an existing order.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	orderModel := model.OrderFromEntity(order)
	result := r.db.WithContext(ctx).Save(orderModel)
	return result.Error
}

// DeleteByID removes an order.
func (r *orderRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OrderModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// DeleteAll removes every order.
func (r *orderRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.OrderModel{})
	return result.Error
}
