package auth

import (
	"net/http"

	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/server"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service *AuthService
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  log,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c echo.Context) error {
	var dto RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Email, password, and name are required")
	}

	user, err := h.service.Register(dto)
	if err != nil {
		h.logger.Error("Registration failed")
		return server.DomainErrorResponse(c, err, "Registration failed")
	}

	return server.SuccessResponse(c, http.StatusCreated, user.ToUserResponse(), "User registered successfully")
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var dto LoginDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Email and password are required")
	}

	tokenResponse, err := h.service.Login(dto)
	if err != nil {
		h.logger.Error("Login failed")
		return server.ErrorResponse(c, http.StatusUnauthorized, "invalid credentials", "Login failed")
	}

	return server.SuccessResponse(c, http.StatusOK, tokenResponse, "Login successful")
}

// SupabaseLogin exchanges a Supabase access token for an app JWT
func (h *AuthHandler) SupabaseLogin(c echo.Context) error {
	var dto SupabaseLoginDTO
	if err := c.Bind(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Invalid request body")
	}
	if err := c.Validate(&dto); err != nil {
		return server.ErrorResponse(c, http.StatusBadRequest, err.Error(), "Supabase access token is required")
	}

	tokenResponse, err := h.service.LoginWithSupabase(dto)
	if err != nil {
		h.logger.Error("Supabase login failed")
		return server.ErrorResponse(c, http.StatusUnauthorized, "invalid supabase token", "Login failed")
	}

	return server.SuccessResponse(c, http.StatusOK, tokenResponse, "Login successful")
}

// GetProfile returns the authenticated user's profile
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userCtx, err := GetUserFromContext(c)
	if err != nil {
		return server.ErrorResponse(c, http.StatusUnauthorized, err.Error(), "Unauthorized")
	}

	user, err := h.service.GetProfile(userCtx.UserID)
	if err != nil {
		h.logger.Error("Failed to get user profile")
		return server.DomainErrorResponse(c, err, "Failed to get profile")
	}

	return server.SuccessResponse(c, http.StatusOK, user.ToUserResponse(), "Profile retrieved successfully")
}
