package insights

import (
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/logger"
)

// RunMigrations runs sale schema migrations (development path)
func RunMigrations(db *database.Database, log *logger.Logger) error {
	log.Info("Running insights migrations")
	return db.AutoMigrate(&Sale{})
}
