// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/dapur-ledger/backend/internal/domain/rbac"
)

// UpdatePermissionRequest represents the request body for a permission toggle.
type UpdatePermissionRequest struct {
	Role     string `json:"role" binding:"required"`
	Category string `json:"category" binding:"required"`
	Action   string `json:"action" binding:"required"`
	Value    *bool  `json:"value" binding:"required"`
}

// PermissionMatrixResponse represents the permission matrix keyed by role,
// category, and action, plus where the matrix was resolved from.
type PermissionMatrixResponse struct {
	Matrix map[string]map[string]map[string]bool `json:"matrix"`
	Source string                                `json:"source,omitempty"`
}

// DefaultTabResponse represents the landing tab resolution for a role.
type DefaultTabResponse struct {
	Tab       string `json:"tab"`
	HasAccess bool   `json:"hasAccess"`
}

// ToPermissionMatrixResponse converts an rbac matrix to its wire representation.
func ToPermissionMatrixResponse(matrix rbac.Matrix, source string) PermissionMatrixResponse {
	out := make(map[string]map[string]map[string]bool, len(matrix))
	for role, grants := range matrix {
		categories := make(map[string]map[string]bool, len(grants))
		for category, actions := range grants {
			flags := make(map[string]bool, len(actions))
			for action, allowed := range actions {
				flags[string(action)] = allowed
			}
			categories[string(category)] = flags
		}
		out[string(role)] = categories
	}
	return PermissionMatrixResponse{
		Matrix: out,
		Source: source,
	}
}
