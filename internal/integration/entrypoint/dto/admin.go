// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/dapur-ledger/backend/internal/application/usecase/admin"
)

// CreateUserRequest represents the request body for user creation.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=Administrator Manager User"`
}

// UpdateUserRequest represents the request body for a partial user update.
// Omitted fields are left unchanged.
type UpdateUserRequest struct {
	Role     *string `json:"role" binding:"omitempty,oneof=Administrator Manager User"`
	Active   *bool   `json:"active"`
	Password *string `json:"password"`
}

// AdminUserResponse represents a user in admin API responses.
type AdminUserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// AdminUserListResponse represents the response for listing users.
type AdminUserListResponse struct {
	Users []AdminUserResponse `json:"users"`
}

// ResetDataResponse confirms a data reset.
type ResetDataResponse struct {
	Message string `json:"message"`
}

// ToAdminUserResponse converts a UserOutput to an AdminUserResponse DTO.
func ToAdminUserResponse(output *admin.UserOutput) AdminUserResponse {
	return AdminUserResponse{
		ID:        output.ID.String(),
		Username:  output.Username,
		Role:      string(output.Role),
		Active:    output.Active,
		LastLogin: output.LastLogin,
		CreatedAt: output.CreatedAt,
	}
}

// ToAdminUserListResponse converts a list of UserOutput to AdminUserListResponse.
func ToAdminUserListResponse(outputs []*admin.UserOutput) AdminUserListResponse {
	users := make([]AdminUserResponse, len(outputs))
	for i, output := range outputs {
		users[i] = ToAdminUserResponse(output)
	}
	return AdminUserListResponse{
		Users: users,
	}
}
