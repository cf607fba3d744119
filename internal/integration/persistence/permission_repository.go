// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dapur-ledger/backend/internal/application/adapter"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
)

// permissionRepository implements the adapter.PermissionRepository interface.
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository instance.
func NewPermissionRepository(db *gorm.DB) adapter.PermissionRepository {
	return &permissionRepository{
		db: db,
	}
}

// Load retrieves the full stored matrix, one row per role.
func (r *permissionRepository) Load(ctx context.Context) (rbac.Matrix, error) {
	var models []model.RolePermissionModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	matrix := rbac.Matrix{}
	for i := range models {
		matrix[entity.Role(models[i].Role)] = rbac.CategoryGrants(models[i].Grants)
	}
	return matrix, nil
}

// SaveRole persists the grants of a single role, inserting or updating its row.
func (r *permissionRepository) SaveRole(ctx context.Context, role entity.Role, grants rbac.CategoryGrants) error {
	now := time.Now().UTC()
	row := &model.RolePermissionModel{
		Role:      string(role),
		Grants:    model.GrantsJSON(grants),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "role"}},
			DoUpdates: clause.AssignmentColumns([]string{"grants", "updated_at"}),
		}).
		Create(row)
	return result.Error
}

// Seed writes the given matrix for any role not yet present.
func (r *permissionRepository) Seed(ctx context.Context, m rbac.Matrix) error {
	now := time.Now().UTC()
	rows := make([]model.RolePermissionModel, 0, len(m))
	for role, grants := range m {
		rows = append(rows, model.RolePermissionModel{
			Role:      string(role),
			Grants:    model.GrantsJSON(grants),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows)
	return result.Error
}
