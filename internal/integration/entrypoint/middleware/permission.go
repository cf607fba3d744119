// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/application/usecase/permission"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
)

// PermissionMiddleware gates endpoints on the permission matrix. Every check
// resolves the current matrix, so admin toggles apply on the next request
// without re-login.
type PermissionMiddleware struct {
	resolveAccess *permission.ResolveAccessUseCase
}

// NewPermissionMiddleware creates a new permission middleware instance.
func NewPermissionMiddleware(resolveAccess *permission.ResolveAccessUseCase) *PermissionMiddleware {
	return &PermissionMiddleware{
		resolveAccess: resolveAccess,
	}
}

// Require returns a Gin middleware handler that denies the request unless the
// authenticated user's role is granted action in category. Must run after
// AuthMiddleware.Authenticate.
func (m *PermissionMiddleware) Require(category rbac.Category, action rbac.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRoleFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authentication required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		allowed, err := m.resolveAccess.Can(c.Request.Context(), role, category, action)
		if err != nil {
			slog.Error("Permission check failed",
				"role", role,
				"category", category,
				"action", action,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to resolve permissions",
				Code:  string(domainerror.ErrCodePermissionMatrixLoad),
			})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "You do not have permission to perform this action",
				Code:  string(domainerror.ErrCodePermissionDenied),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
