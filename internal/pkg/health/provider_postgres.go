package health

import (
	"context"
	"time"

	"lucrofacil/internal/pkg/database"
)

// PostgresProvider checks the database connection
type PostgresProvider struct {
	db *database.Database
}

// NewPostgresProvider creates a postgres health provider
func NewPostgresProvider(db *database.Database) *PostgresProvider {
	return &PostgresProvider{db: db}
}

// Name returns the provider name
func (p *PostgresProvider) Name() string {
	return "postgres"
}

// Check pings the database
func (p *PostgresProvider) Check(ctx context.Context) CheckResult {
	result := CheckResult{
		Name:      p.Name(),
		Status:    StatusUp,
		CheckedAt: time.Now(),
	}

	sqlDB, err := p.db.SQLDB()
	if err != nil {
		result.Status = StatusDown
		result.Error = err.Error()
		return result
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		result.Status = StatusDown
		result.Error = err.Error()
	}

	return result
}
