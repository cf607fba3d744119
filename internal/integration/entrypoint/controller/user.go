// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/usecase/admin"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/middleware"
)

// UserController handles admin user management endpoints.
type UserController struct {
	listUseCase   *admin.ListUsersUseCase
	createUseCase *admin.CreateUserUseCase
	updateUseCase *admin.UpdateUserUseCase
	resetUseCase  *admin.ResetDataUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	listUseCase *admin.ListUsersUseCase,
	createUseCase *admin.CreateUserUseCase,
	updateUseCase *admin.UpdateUserUseCase,
	resetUseCase *admin.ResetDataUseCase,
) *UserController {
	return &UserController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		resetUseCase:  resetUseCase,
	}
}

// List handles GET /admin/users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminUserListResponse(output.Users))
}

// Create handles POST /admin/users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	input := admin.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdminUserResponse(output.User))
}

// Update handles PUT /admin/users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	actingUserID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
		return
	}

	input := admin.UpdateUserInput{
		ActingUserID: actingUserID,
		UserID:       userID,
		Active:       req.Active,
		Password:     req.Password,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminUserResponse(output.User))
}

// ResetData handles POST /admin/reset requests. It wipes all business data
// and every user account except the acting administrator's.
func (c *UserController) ResetData(ctx *gin.Context) {
	actingUserID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), admin.ResetDataInput{ActingUserID: actingUserID}); err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ResetDataResponse{
		Message: "All data has been reset",
	})
}

// handleUserError maps user management errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
	case errors.Is(err, domainerror.ErrUsernameTaken):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Username is already taken",
			Code:  string(domainerror.ErrCodeUsernameTaken),
		})
	case errors.Is(err, domainerror.ErrInvalidRole):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Role must be one of Administrator, Manager, User",
			Code:  string(domainerror.ErrCodeInvalidRole),
		})
	case errors.Is(err, domainerror.ErrWeakPassword):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Password does not meet minimum requirements",
			Code:  string(domainerror.ErrCodeWeakPassword),
		})
	case errors.Is(err, domainerror.ErrMissingUserFields):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Username and password are required",
			Code:  string(domainerror.ErrCodeMissingUserFields),
		})
	case errors.Is(err, domainerror.ErrCannotDeactivateSelf):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "You cannot deactivate your own account",
			Code:  string(domainerror.ErrCodeCannotDeactivateSelf),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
