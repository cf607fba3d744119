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

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// SelectAll retrieves every category ordered by the given column expression.
func (r *categoryRepository) SelectAll(ctx context.Context, orderBy string) ([]entity.Category, error) {
	var models []model.CategoryModel
	result := r.db.WithContext(ctx).Order(orderBy).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]entity.Category, len(models))
	for i := range models {
		categories[i] = *models[i].ToEntity()
	}
	return categories, nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByType retrieves the categories of one type in manual sort order.
func (r *categoryRepository) FindByType(ctx context.Context, categoryType entity.CategoryType) ([]entity.Category, error) {
	var models []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("type = ?", string(categoryType)).
		Order("sort_order ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]entity.Category, len(models))
	for i := range models {
		categories[i] = *models[i].ToEntity()
	}
	return categories, nil
}

// ExistsByNameAndType checks name uniqueness within a type.
func (r *categoryRepository) ExistsByNameAndType(ctx context.Context, name string, categoryType entity.CategoryType) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ? AND type = ?", name, string(categoryType)).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Insert creates a new category in the database.
func (r *categoryRepository) Insert(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	return result.Error
}

// Update replaces all fields of an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	return result.Error
}

// SwapSortOrder exchanges the sort positions of two categories atomically.
func (r *categoryRepository) SwapSortOrder(ctx context.Context, a, b *entity.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CategoryModel{}).
			Where("id = ?", a.ID).
			Update("sort_order", b.SortOrder).Error; err != nil {
			return err
		}
		return tx.Model(&model.CategoryModel{}).
			Where("id = ?", b.ID).
			Update("sort_order", a.SortOrder).Error
	})
}

// DeleteByID removes a category.
func (r *categoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// NextSortOrder returns the next dense sort position for a type.
func (r *categoryRepository) NextSortOrder(ctx context.Context, categoryType entity.CategoryType) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("type = ?", string(categoryType)).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// DeleteAll removes every category.
func (r *categoryRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.CategoryModel{})
	return result.Error
}
