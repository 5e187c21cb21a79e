package auth

import (
	"lucrofacil/internal/pkg/server"

	"go.uber.org/fx"
)

// Module provides the auth service components
var Module = fx.Module("auth",
	fx.Provide(
		NewAuthRepository,
		NewAuthService,
		NewAuthHandler,
	),
	fx.Invoke(registerRoutes),
)

// registerRoutes registers auth routes on the Echo server
func registerRoutes(srv *server.Server, handler *AuthHandler, authService *AuthService) {
	RegisterAuthRoutes(srv.GetEcho(), handler, authService)
}
