// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents a transaction category. Names are unique within a type
// and SortOrder values stay dense per type for manual adjacent-swap reordering.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
