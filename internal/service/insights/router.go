package insights

import (
	"lucrofacil/internal/service/auth"

	"github.com/labstack/echo/v4"
)

// RegisterInsightsRoutes registers insight routes
func RegisterInsightsRoutes(e *echo.Echo, handler *InsightsHandler, authService *auth.AuthService) {
	insightGroup := e.Group("/api/v1/insights")
	insightGroup.Use(auth.JWTMiddleware(authService))
	insightGroup.GET("", handler.Report)

	saleGroup := e.Group("/api/v1/sales")
	saleGroup.Use(auth.JWTMiddleware(authService))
	saleGroup.POST("", handler.RecordSale)
}
