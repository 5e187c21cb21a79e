package inventory

import (
	"net/http"
	"strconv"
	"time"

	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"

	"github.com/labstack/echo/v4"
)

// InventoryHandler handles inventory HTTP requests
type InventoryHandler struct {
	service *InventoryService
	logger  *logger.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service *InventoryService, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  log,
	}
}

// CreateMovement handles registering a stock movement
func (h *InventoryHandler) CreateMovement(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto CreateMovementDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid movement data")
	}

	movement, err := h.service.RegisterMovement(userCtx.UserID, &dto)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to register movement")
	}

	return server.SuccessResponse(c, http.StatusCreated, movement, "Movement registered successfully")
}

// DeleteMovement handles deleting a movement and reversing its stock effect
func (h *InventoryHandler) DeleteMovement(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	stock, err := h.service.DeleteMovement(c.Param("id"), userCtx.UserID)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to delete movement")
	}

	return server.SuccessResponse(c, http.StatusOK, stock, "Movement deleted successfully")
}

// ListMovements handles listing movements with optional filters
func (h *InventoryHandler) ListMovements(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	filter := MovementFilter{
		ProductID: c.QueryParam("product_id"),
		Type:      MovementType(c.QueryParam("type")),
	}
	if from := c.QueryParam("from"); from != "" {
		date, err := time.Parse(dateLayout, from)
		if err != nil {
			return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid from date")
		}
		filter.From = &date
	}
	if to := c.QueryParam("to"); to != "" {
		date, err := time.Parse(dateLayout, to)
		if err != nil {
			return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid to date")
		}
		filter.To = &date
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return server.ErrorResponse(c, http.StatusBadRequest, "limit must be a non-negative integer", "Invalid limit")
		}
		filter.Limit = n
	}
	if offset := c.QueryParam("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			return server.ErrorResponse(c, http.StatusBadRequest, "offset must be a non-negative integer", "Invalid offset")
		}
		filter.Offset = n
	}

	movements, err := h.service.ListMovements(userCtx.UserID, filter)
	if err != nil {
		h.logger.Error("Failed to list movements")
		return server.DomainErrorResponse(c, err, "Failed to list movements")
	}

	return server.SuccessResponse(c, http.StatusOK, movements, "Movements retrieved successfully")
}

// ListStocks handles listing stock levels for all of the user's products
func (h *InventoryHandler) ListStocks(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	stocks, err := h.service.ListStocks(userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to list stocks")
		return server.DomainErrorResponse(c, err, "Failed to list stocks")
	}

	return server.SuccessResponse(c, http.StatusOK, stocks, "Stocks retrieved successfully")
}

// GetStock handles retrieving the stock level of one product
func (h *InventoryHandler) GetStock(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	stock, err := h.service.GetStock(c.Param("productId"), userCtx.UserID)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to get stock")
	}

	return server.SuccessResponse(c, http.StatusOK, stock, "Stock retrieved successfully")
}

// GetStockDetails handles retrieving the widened stock shape of one product
func (h *InventoryHandler) GetStockDetails(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	details, err := h.service.GetStockDetails(c.Param("productId"), userCtx.UserID)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to get stock details")
	}

	return server.SuccessResponse(c, http.StatusOK, details, "Stock details retrieved successfully")
}

// SetMinimumStock handles updating a product's minimum stock threshold
func (h *InventoryHandler) SetMinimumStock(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto SetMinimumStockDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid minimum stock data")
	}

	stock, err := h.service.SetMinimumStock(c.Param("productId"), userCtx.UserID, &dto)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to update minimum stock")
	}

	return server.SuccessResponse(c, http.StatusOK, stock, "Minimum stock updated successfully")
}

// DailySummary handles the single-day movement summary
func (h *InventoryHandler) DailySummary(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	}

	summary, err := h.service.DailySummary(userCtx.UserID, date)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to compute daily summary")
	}

	return server.SuccessResponse(c, http.StatusOK, summary, "Daily summary computed successfully")
}

// PeriodSummary handles the date-range movement summary
func (h *InventoryHandler) PeriodSummary(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	summary, err := h.service.PeriodSummary(userCtx.UserID, c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to compute period summary")
	}

	return server.SuccessResponse(c, http.StatusOK, summary, "Period summary computed successfully")
}
