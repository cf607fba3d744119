// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dapur-ledger/backend/internal/application/usecase/order"
	"github.com/dapur-ledger/backend/internal/domain/entity"
	domainerror "github.com/dapur-ledger/backend/internal/domain/error"
	"github.com/dapur-ledger/backend/internal/integration/entrypoint/dto"
)

// OrderController handles customer order endpoints.
type OrderController struct {
	createUseCase *order.CreateOrderUseCase
	listUseCase   *order.ListOrdersUseCase
	updateUseCase *order.UpdateOrderUseCase
	deleteUseCase *order.DeleteOrderUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	createUseCase *order.CreateOrderUseCase,
	listUseCase *order.ListOrdersUseCase,
	updateUseCase *order.UpdateOrderUseCase,
	deleteUseCase *order.DeleteOrderUseCase,
) *OrderController {
	return &OrderController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Order date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	pickupDate, err := parseOptionalDate(req.PickupDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Pickup date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	deliveryDate, err := parseOptionalDate(req.DeliveryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Delivery date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	input := order.CreateOrderInput{
		Name:            req.Name,
		ContactNo:       req.ContactNo,
		CustomerEmail:   req.CustomerEmail,
		OrderDate:       orderDate,
		PickupDate:      pickupDate,
		DeliveryDate:    deliveryDate,
		Set:             entity.ProductSet(req.Set),
		Quantity:        req.Quantity,
		Time:            req.Time,
		DeliveryType:    entity.DeliveryType(req.DeliveryType),
		DeliveryAddress: req.DeliveryAddress,
		Remarks:         req.Remarks,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// List handles GET /orders requests.
func (c *OrderController) List(ctx *gin.Context) {
	mode, year, month := parsePeriodQuery(ctx)

	output, err := c.listUseCase.Execute(ctx.Request.Context(), order.ListOrdersInput{
		Mode:  mode,
		Year:  year,
		Month: month,
	})
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderListResponse(output.Orders))
}

// Update handles PUT /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID",
			Code:  string(domainerror.ErrCodeOrderNotFound),
		})
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	orderDate, err := time.Parse("2006-01-02", req.OrderDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Order date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	pickupDate, err := parseOptionalDate(req.PickupDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Pickup date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	deliveryDate, err := parseOptionalDate(req.DeliveryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Delivery date must be in YYYY-MM-DD format",
			Code:  string(domainerror.ErrCodeMissingOrderFields),
		})
		return
	}

	input := order.UpdateOrderInput{
		ID:              id,
		Name:            req.Name,
		ContactNo:       req.ContactNo,
		CustomerEmail:   req.CustomerEmail,
		OrderDate:       orderDate,
		PickupDate:      pickupDate,
		DeliveryDate:    deliveryDate,
		Set:             entity.ProductSet(req.Set),
		Quantity:        req.Quantity,
		Time:            req.Time,
		DeliveryType:    entity.DeliveryType(req.DeliveryType),
		DeliveryAddress: req.DeliveryAddress,
		PaymentStatus:   entity.PaymentStatus(req.PaymentStatus),
		DeliveryStatus:  entity.DeliveryStatus(req.DeliveryStatus),
		Remarks:         req.Remarks,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid order ID",
			Code:  string(domainerror.ErrCodeOrderNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), order.DeleteOrderInput{ID: id}); err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Order deleted",
	})
}

// handleOrderError maps order errors to HTTP responses.
func (c *OrderController) handleOrderError(ctx *gin.Context, err error) {
	var orderErr *domainerror.OrderError
	if errors.As(err, &orderErr) {
		ctx.JSON(getStatusCodeForOrderError(orderErr.Code), dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

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

// getStatusCodeForOrderError maps order error codes to HTTP status codes.
func getStatusCodeForOrderError(code domainerror.OrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidProductSet,
		domainerror.ErrCodeInvalidDeliveryType,
		domainerror.ErrCodeInvalidOrderStatus,
		domainerror.ErrCodeMissingOrderFields,
		domainerror.ErrCodeMissingDeliveryAddress:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
