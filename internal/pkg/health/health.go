package health

import (
	"context"
	"time"
)

// Status represents the health status of a component
type Status string

const (
	// StatusUp indicates the component is healthy
	StatusUp Status = "UP"
	// StatusDown indicates the component is unhealthy
	StatusDown Status = "DOWN"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Provider is the interface all health check providers implement
type Provider interface {
	// Name returns the name of the provider
	Name() string
	// Check performs the health check and returns the result
	Check(ctx context.Context) CheckResult
}

// Service runs registered providers and aggregates their statuses. Overall
// status is UP only when every provider is UP.
type Service struct {
	providers []Provider
	timeout   time.Duration
}

// NewService creates a new health service
func NewService(providers ...Provider) *Service {
	return &Service{
		providers: providers,
		timeout:   5 * time.Second,
	}
}

// Check runs all health checks sequentially
func (s *Service) Check(ctx context.Context) ([]CheckResult, Status) {
	overall := StatusUp
	results := make([]CheckResult, 0, len(s.providers))

	for _, p := range s.providers {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		result := p.Check(checkCtx)
		cancel()

		if result.Status != StatusUp {
			overall = StatusDown
		}
		results = append(results, result)
	}

	return results, overall
}
