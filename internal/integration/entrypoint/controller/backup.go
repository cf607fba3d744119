// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/application/usecase/backup"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
)

// BackupController handles backup export and import endpoints.
type BackupController struct {
	exportUseCase *backup.ExportBackupUseCase
	importUseCase *backup.ImportBackupUseCase
}

// ImportBackupResponse reports how many records were restored.
type ImportBackupResponse struct {
	Transactions int `json:"transactions"`
	Categories   int `json:"categories"`
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportBackupUseCase,
	importUseCase *backup.ImportBackupUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /admin/backup requests. The envelope is the wire format;
// it serializes as-is.
func (c *BackupController) Export(ctx *gin.Context) {
	envelope, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export backup",
		})
		return
	}

	ctx.JSON(http.StatusOK, envelope)
}

// Import handles POST /admin/backup requests.
func (c *BackupController) Import(ctx *gin.Context) {
	var envelope backup.Envelope
	if err := ctx.ShouldBindJSON(&envelope); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid backup payload",
			Code:  string(domainerror.ErrCodeInvalidBackupPayload),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), &envelope)
	if err != nil {
		c.handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ImportBackupResponse{
		Transactions: output.Transactions,
		Categories:   output.Categories,
	})
}

// handleBackupError maps backup errors to HTTP responses.
func (c *BackupController) handleBackupError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvalidBackupPayload):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid backup payload",
			Code:  string(domainerror.ErrCodeInvalidBackupPayload),
		})
	case errors.Is(err, domainerror.ErrUnsupportedBackupVersion):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unsupported backup version",
			Code:  string(domainerror.ErrCodeUnsupportedBackupVersion),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
