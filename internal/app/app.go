// Package app assembles the fx dependency graph for the lucrofacil API.
package app

import (
	"lucrofacil/internal/pkg/config"
	"lucrofacil/internal/pkg/database"
	"lucrofacil/internal/pkg/health"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pkg/server"
	"lucrofacil/internal/service/auth"
	"lucrofacil/internal/service/insights"
	"lucrofacil/internal/service/inventory"
	"lucrofacil/internal/service/product"

	"go.uber.org/fx"
)

// App provides the full API server dependency graph
var App = fx.Options(
	// Infrastructure modules
	config.Module,
	logger.Module,
	database.Module,
	server.Module,
	health.Module,

	// Service slices
	auth.Module,
	product.Module,
	inventory.Module,
	insights.Module,
)

// MigrationApp provides the minimal graph for running migrations: config,
// logger, and database only.
var MigrationApp = fx.Options(
	config.Module,
	logger.Module,
	database.Module,
)
