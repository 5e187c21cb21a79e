package auth

import (
	"github.com/labstack/echo/v4"
)

// RegisterAuthRoutes registers auth routes
func RegisterAuthRoutes(e *echo.Echo, handler *AuthHandler, authService *AuthService) {
	authGroup := e.Group("/api/v1/auth")

	authGroup.POST("/register", handler.Register)
	authGroup.POST("/login", handler.Login)
	authGroup.POST("/supabase", handler.SupabaseLogin)

	// Profile requires a valid token
	profileGroup := authGroup.Group("/profile")
	profileGroup.Use(JWTMiddleware(authService))
	profileGroup.GET("", handler.GetProfile)
}
