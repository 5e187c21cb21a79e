package product

import (
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"

	"go.uber.org/fx"
)

// Module provides the product service components
var Module = fx.Module("product",
	fx.Provide(
		NewProductRepository,
		NewProductService,
		NewProductHandler,
	),
	fx.Invoke(registerRoutes),
)

// registerRoutes registers product routes on the Echo server
func registerRoutes(srv *server.Server, handler *ProductHandler, authService *auth.AuthService) {
	RegisterProductRoutes(srv.GetEcho(), handler, authService)
}
