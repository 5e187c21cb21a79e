package product

import (
	"net/http"

	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"

	"github.com/labstack/echo/v4"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	service *ProductService
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  log,
	}
}

// Create handles product creation
func (h *ProductHandler) Create(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto CreateProductDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid product data")
	}

	product, err := h.service.Create(dto, userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to create product")
		return server.DomainErrorResponse(c, err, "Failed to create product")
	}

	return server.SuccessResponse(c, http.StatusCreated, product, "Product created successfully")
}

// Get handles retrieving a product by ID
func (h *ProductHandler) Get(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	product, err := h.service.GetByID(c.Param("id"), userCtx.UserID)
	if err != nil {
		return server.DomainErrorResponse(c, err, "Product not found")
	}

	return server.SuccessResponse(c, http.StatusOK, product, "Product retrieved successfully")
}

// List handles listing the user's products
func (h *ProductHandler) List(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	products, err := h.service.ListByUser(userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to list products")
		return server.DomainErrorResponse(c, err, "Failed to list products")
	}

	return server.SuccessResponse(c, http.StatusOK, products, "Products retrieved successfully")
}

// Update handles product updates
func (h *ProductHandler) Update(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto UpdateProductDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid product data")
	}

	product, err := h.service.Update(c.Param("id"), dto, userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to update product")
		return server.DomainErrorResponse(c, err, "Failed to update product")
	}

	return server.SuccessResponse(c, http.StatusOK, product, "Product updated successfully")
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c echo.Context) error {
	userCtx, err := auth.GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	if err := h.service.Delete(c.Param("id"), userCtx.UserID); err != nil {
		h.logger.Error("Failed to delete product")
		return server.DomainErrorResponse(c, err, "Failed to delete product")
	}

	return server.SuccessResponse(c, http.StatusOK, nil, "Product deleted successfully")
}

// Simulate handles ad-hoc pricing simulations
func (h *ProductHandler) Simulate(c echo.Context) error {
	if _, err := auth.GetUserFromContext(c); err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	var dto SimulationDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid simulation data")
	}

	return server.SuccessResponse(c, http.StatusOK, h.service.Simulate(dto), "Simulation computed successfully")
}
