// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	summaryUseCase   *dashboard.GetSummaryUseCase
	breakdownUseCase *dashboard.GetOrdersBreakdownUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownUseCase *dashboard.GetOrdersBreakdownUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	mode, year, month := parsePeriodQuery(ctx)

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), dashboard.GetSummaryInput{
		Mode:  mode,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Totals, output.Count))
}

// OrdersBreakdown handles GET /dashboard/orders-breakdown requests.
func (c *DashboardController) OrdersBreakdown(ctx *gin.Context) {
	mode, year, month := parsePeriodQuery(ctx)

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), dashboard.GetOrdersBreakdownInput{
		Mode:  mode,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrdersBreakdownResponse(output.Breakdown))
}

// handleDashboardError maps dashboard errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
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
