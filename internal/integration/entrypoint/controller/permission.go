// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/application/usecase/permission"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/domain/rbac"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/middleware"
)

// PermissionController handles permission matrix endpoints.
type PermissionController struct {
	getMatrixUseCase        *permission.GetMatrixUseCase
	updatePermissionUseCase *permission.UpdatePermissionUseCase
	resolveAccessUseCase    *permission.ResolveAccessUseCase
}

// NewPermissionController creates a new permission controller instance.
func NewPermissionController(
	getMatrixUseCase *permission.GetMatrixUseCase,
	updatePermissionUseCase *permission.UpdatePermissionUseCase,
	resolveAccessUseCase *permission.ResolveAccessUseCase,
) *PermissionController {
	return &PermissionController{
		getMatrixUseCase:        getMatrixUseCase,
		updatePermissionUseCase: updatePermissionUseCase,
		resolveAccessUseCase:    resolveAccessUseCase,
	}
}

// GetMatrix handles GET /permissions requests.
func (c *PermissionController) GetMatrix(ctx *gin.Context) {
	output, err := c.getMatrixUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePermissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPermissionMatrixResponse(output.Matrix, string(output.Source)))
}

// UpdatePermission handles PUT /permissions requests.
func (c *PermissionController) UpdatePermission(ctx *gin.Context) {
	var req dto.UpdatePermissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeUnknownPermissionKey),
		})
		return
	}

	input := permission.UpdatePermissionInput{
		Role:     entity.Role(req.Role),
		Category: rbac.Category(req.Category),
		Action:   rbac.Action(req.Action),
		Value:    *req.Value,
	}

	output, err := c.updatePermissionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrPermissionPersist) && output != nil {
			// The toggle was rejected; return the authoritative matrix so the
			// client can resync.
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to save permission change",
				Code:  string(domainerror.ErrCodePermissionPersist),
			})
			return
		}
		c.handlePermissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPermissionMatrixResponse(output.Matrix, ""))
}

// DefaultTab handles GET /permissions/default-tab requests. It resolves the
// landing tab for the authenticated user's role.
func (c *PermissionController) DefaultTab(ctx *gin.Context) {
	role, ok := middleware.GetRoleFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	tab, hasAccess, err := c.resolveAccessUseCase.DefaultTab(ctx.Request.Context(), role)
	if err != nil {
		c.handlePermissionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DefaultTabResponse{
		Tab:       string(tab),
		HasAccess: hasAccess,
	})
}

// handlePermissionError maps permission errors to HTTP responses.
func (c *PermissionController) handlePermissionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrUnknownPermissionKey):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown role, category, or action",
			Code:  string(domainerror.ErrCodeUnknownPermissionKey),
		})
	case errors.Is(err, domainerror.ErrPermissionMatrixLoad):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load permission matrix",
			Code:  string(domainerror.ErrCodePermissionMatrixLoad),
		})
	case errors.Is(err, domainerror.ErrPermissionPersist):
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to save permission change",
			Code:  string(domainerror.ErrCodePermissionPersist),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
