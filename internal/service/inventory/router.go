package inventory

import (
	"lucrofacil/internal/service/auth"

	"github.com/labstack/echo/v4"
)

// RegisterInventoryRoutes registers inventory routes
func RegisterInventoryRoutes(e *echo.Echo, handler *InventoryHandler, authService *auth.AuthService) {
	movementGroup := e.Group("/api/v1/movements")
	movementGroup.Use(auth.JWTMiddleware(authService))

	movementGroup.POST("", handler.CreateMovement)
	movementGroup.GET("", handler.ListMovements)
	movementGroup.DELETE("/:id", handler.DeleteMovement)
	movementGroup.GET("/summary/daily", handler.DailySummary)
	movementGroup.GET("/summary/period", handler.PeriodSummary)

	stockGroup := e.Group("/api/v1/stocks")
	stockGroup.Use(auth.JWTMiddleware(authService))

	stockGroup.GET("", handler.ListStocks)
	stockGroup.GET("/:productId", handler.GetStock)
	stockGroup.GET("/:productId/details", handler.GetStockDetails)
	stockGroup.PUT("/:productId/minimum", handler.SetMinimumStock)
}
