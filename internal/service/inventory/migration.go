package inventory

import (
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/logger"
)

// RunMigrations runs inventory schema migrations (development path)
func RunMigrations(db *database.Database, log *logger.Logger) error {
	log.Info("Running inventory migrations")
	return db.AutoMigrate(&ProductStock{}, &StockMovement{})
}
