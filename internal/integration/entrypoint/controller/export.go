// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/application/usecase/export"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
)

// ExportController handles CSV export endpoints.
type ExportController struct {
	transactionsUseCase *export.ExportTransactionsUseCase
	ordersUseCase       *export.ExportOrdersUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(
	transactionsUseCase *export.ExportTransactionsUseCase,
	ordersUseCase *export.ExportOrdersUseCase,
) *ExportController {
	return &ExportController{
		transactionsUseCase: transactionsUseCase,
		ordersUseCase:       ordersUseCase,
	}
}

// Transactions handles GET /transactions/export requests.
func (c *ExportController) Transactions(ctx *gin.Context) {
	mode, year, month := parsePeriodQuery(ctx)

	output, err := c.transactionsUseCase.Execute(ctx.Request.Context(), export.ExportTransactionsInput{
		Mode:  mode,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	writeCSV(ctx, output.Filename, output.Data)
}

// Orders handles GET /orders/export requests.
func (c *ExportController) Orders(ctx *gin.Context) {
	mode, year, month := parsePeriodQuery(ctx)

	output, err := c.ordersUseCase.Execute(ctx.Request.Context(), export.ExportOrdersInput{
		Mode:  mode,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleExportError(ctx, err)
		return
	}

	writeCSV(ctx, output.Filename, output.Data)
}

// handleExportError maps export errors to HTTP responses.
func (c *ExportController) handleExportError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInvalidPeriodMode) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Mode must be one of all, yearly, monthly",
			Code:  string(domainerror.ErrCodeInvalidPeriodMode),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// writeCSV sends a CSV document as a file download.
func writeCSV(ctx *gin.Context, filename string, data []byte) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv", data)
}
