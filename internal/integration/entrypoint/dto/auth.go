// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/dapur-ledger/backend/internal/domain/entity"
)

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// RefreshRequest represents the request body for token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshResponse represents the response for a token refresh.
type RefreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UserResponse represents a user in API responses. Password hashes are never
// serialized.
type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"lastLogin,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     string(user.Role),
		Active:   user.Active,
	}
	if user.LastLogin != nil {
		formatted := user.LastLogin.UTC().Format("2006-01-02T15:04:05Z07:00")
		resp.LastLogin = &formatted
	}
	return resp
}
