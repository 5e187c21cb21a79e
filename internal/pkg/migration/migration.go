package migration

import (
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/file"

	"go.uber.org/zap"
)

// Runner defines the interface for running migrations
type Runner interface {
	// Up runs all available migrations
	Up() error
	// Down rolls back the last migration
	Down() error
	// Version returns the current migration version
	Version() (uint, bool, error)
}

// Migrator implements Runner using golang-migrate with file-based sources
type Migrator struct {
	migrate *migrate.Migrate
	log     *zap.Logger
}

// NewMigrator creates a new migrator instance.
// migrationsPath is the directory holding the versioned SQL files.
func NewMigrator(db *sql.DB, migrationsPath string, log *zap.Logger) (*Migrator, error) {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("get absolute path: %w", err)
	}

	source, err := (&file.File{}).Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("file", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}

	return &Migrator{
		migrate: m,
		log:     log,
	}, nil
}

// Up implements Runner
func (m *Migrator) Up() error {
	m.log.Info("Running migrations up")
	if err := m.migrate.Up(); err != nil {
		if err == migrate.ErrNoChange {
			m.log.Info("No migrations to run")
			return nil
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	m.log.Info("Migrations completed successfully")
	return nil
}

// Down implements Runner
func (m *Migrator) Down() error {
	m.log.Info("Rolling back last migration")
	if err := m.migrate.Steps(-1); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version implements Runner
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	return version, dirty, err
}
