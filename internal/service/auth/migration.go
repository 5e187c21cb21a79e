package auth

import (
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/logger"
)

// RunMigrations runs auth schema migrations (development path)
func RunMigrations(db *database.Database, log *logger.Logger) error {
	log.Info("Running auth migrations")
	return db.AutoMigrate(&User{})
}
