package main

import (
	"fmt"

	"lucrofacil/internal/app"
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/migration"
	"lucrofacil/internal/service/auth"
	"lucrofacil/internal/service/insights"
	"lucrofacil/internal/service/inventory"
	"lucrofacil/internal/service/product"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// newMigrateCmd creates the migrate command
func newMigrateCmd() *cobra.Command {
	var dir string
	var auto bool
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if auto {
				return runAutoMigrations()
			}
			return runMigrations(dir, down)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "migrations", "directory holding the versioned SQL migrations")
	cmd.Flags().BoolVar(&auto, "auto", false, "use gorm auto-migration instead of versioned SQL (development)")
	cmd.Flags().BoolVar(&down, "down", false, "roll back the last migration")

	return cmd
}

// runMigrations runs the versioned SQL migrations
func runMigrations(dir string, down bool) error {
	fmt.Println("Running database migrations...")

	var log *logger.Logger
	var db *database.Database

	fxApp := fx.New(
		app.MigrationApp,
		fx.NopLogger,
		fx.Invoke(func(l *logger.Logger, d *database.Database) {
			log = l
			db = d
		}),
	)

	if err := startApp(fxApp, "migration"); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = stopApp(fxApp, "migration") }()

	sqlDB, err := db.SQLDB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	migrator, err := migration.NewMigrator(sqlDB, dir, log.Logger)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if down {
		if err := migrator.Down(); err != nil {
			return fmt.Errorf("failed to roll back: %w", err)
		}
		fmt.Println("Rollback completed successfully!")
		return nil
	}

	if err := migrator.Up(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	fmt.Printf("Migrations completed successfully! (version %d, dirty=%v)\n", version, dirty)

	return nil
}

// runAutoMigrations runs gorm auto-migration for every slice (development)
func runAutoMigrations() error {
	fmt.Println("Running gorm auto-migrations...")

	var log *logger.Logger
	var db *database.Database

	fxApp := fx.New(
		app.MigrationApp,
		fx.NopLogger,
		fx.Invoke(func(l *logger.Logger, d *database.Database) {
			log = l
			db = d
		}),
	)

	if err := startApp(fxApp, "migration"); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = stopApp(fxApp, "migration") }()

	migrations := []func(*database.Database, *logger.Logger) error{
		auth.RunMigrations,
		product.RunMigrations,
		inventory.RunMigrations,
		insights.RunMigrations,
	}
	for _, run := range migrations {
		if err := run(db, log); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	fmt.Println("Auto-migrations completed successfully!")
	return nil
}
