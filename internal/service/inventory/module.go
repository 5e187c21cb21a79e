package inventory

import (
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"
	"lucrofacil/internal/service/product"

	"go.uber.org/fx"
)

// Module provides the inventory service components
var Module = fx.Module("inventory",
	fx.Provide(
		NewInventoryRepository,
		newProductSource,
		NewInventoryService,
		NewInventoryHandler,
	),
	fx.Invoke(registerRoutes),
)

// newProductSource adapts the product repository to the inventory's view of it
func newProductSource(repo product.Repository) ProductSource {
	return repo
}

// registerRoutes registers inventory routes on the Echo server
func registerRoutes(srv *server.Server, handler *InventoryHandler, authService *auth.AuthService) {
	RegisterInventoryRoutes(srv.GetEcho(), handler, authService)
}
