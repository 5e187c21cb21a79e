package health

import (
	"net/http"
	"time"

	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/server"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Module exports the health module for FX
var Module = fx.Module("health",
	fx.Provide(newHealthService),
	fx.Invoke(registerHealthRoute),
)

func newHealthService(db *database.Database) *Service {
	return NewService(NewPostgresProvider(db))
}

// healthResponse is the JSON body for the health endpoint
type healthResponse struct {
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// registerHealthRoute exposes GET /health
func registerHealthRoute(srv *server.Server, svc *Service) {
	srv.GetEcho().GET("/health", func(c echo.Context) error {
		checks, overall := svc.Check(c.Request().Context())

		status := http.StatusOK
		if overall != StatusUp {
			status = http.StatusServiceUnavailable
		}

		return c.JSON(status, healthResponse{
			Status:    overall,
			Timestamp: time.Now(),
			Checks:    checks,
		})
	})
}
