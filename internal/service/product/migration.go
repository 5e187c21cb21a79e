package product

import (
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/logger"
)

// RunMigrations runs product schema migrations (development path)
func RunMigrations(db *database.Database, log *logger.Logger) error {
	log.Info("Running product migrations")
	return db.AutoMigrate(&Product{})
}
