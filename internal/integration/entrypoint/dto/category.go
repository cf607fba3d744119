// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=expense income"`
}

// UpdateCategoryRequest represents the request body for a category rename.
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ReorderCategoryRequest represents the request body for moving a category one
// position within its type.
type ReorderCategoryRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// UpdateCategoryResponse reports the result of a rename, including how many
// transactions were repointed to the new name.
type UpdateCategoryResponse struct {
	RepairedTransactions int64 `json:"repairedTransactions"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		SortOrder: category.SortOrder,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of Category entities to CategoryListResponse.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return CategoryListResponse{
		Categories: responses,
	}
}
