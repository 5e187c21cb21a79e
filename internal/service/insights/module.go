package insights

import (
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"
	"lucrofacil/internal/service/product"

	"go.uber.org/fx"
)

// Module provides the insights service components
var Module = fx.Module("insights",
	fx.Provide(
		NewSaleRepository,
		newProductSource,
		NewInsightsService,
		NewInsightsHandler,
	),
	fx.Invoke(registerRoutes),
)

// newProductSource adapts the product repository to the engine's view of it
func newProductSource(repo product.Repository) ProductSource {
	return repo
}

// registerRoutes registers insight routes on the Echo server
func registerRoutes(srv *server.Server, handler *InsightsHandler, authService *auth.AuthService) {
	RegisterInsightsRoutes(srv.GetEcho(), handler, authService)
}
