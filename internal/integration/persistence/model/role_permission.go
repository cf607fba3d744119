// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// GrantsJSON stores a role's category grants as a JSONB document.
type GrantsJSON rbac.CategoryGrants

// Value implements the driver.Valuer interface.
func (g GrantsJSON) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan implements the sql.Scanner interface.
func (g *GrantsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, g)
}

// RolePermissionModel represents the role_permissions table. One row per role;
// the grants document carries the role's full category grid.
type RolePermissionModel struct {
	Role      string     `gorm:"type:varchar(20);primaryKey"`
	Grants    GrantsJSON `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the RolePermissionModel.
func (RolePermissionModel) TableName() string {
	return "role_permissions"
}
