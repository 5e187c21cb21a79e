package insights

import (
	"net/http"

	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"

	"github.com/labstack/echo/v4"
)

// InsightsHandler handles insight HTTP requests
type InsightsHandler struct {
	service *InsightsService
	logger  *logger.Logger
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(service *InsightsService, log *logger.Logger) *InsightsHandler {
	return &InsightsHandler{
		service: service,
		logger:  log,
	}
}

// Report handles the insight report for a period
func (h *InsightsHandler) Report(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	report, err := h.service.Report(userCtx.UserID, c.QueryParam("period"), c.QueryParam("source"))
	if err != nil {
		h.logger.Error("Failed to build insight report")
		return server.DomainErrorResponse(c, err, "Failed to build insight report")
	}

	return server.SuccessResponse(c, http.StatusOK, report, "Insights computed successfully")
}

// RecordSale handles recording a sale fact
func (h *InsightsHandler) RecordSale(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto CreateSaleDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid sale data")
	}

	sale, err := h.service.RecordSale(userCtx.UserID, &dto)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Failed to record sale")
	}

	return server.SuccessResponse(c, http.StatusCreated, sale, "Sale recorded successfully")
}
