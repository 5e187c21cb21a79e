// Package apperr defines the domain error taxonomy shared by every service
// slice. Handlers translate these into HTTP responses; services never retry.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates malformed or out-of-range input reaching a
	// service boundary (non-positive quantity, bad movement type, etc.)
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a referenced product, movement, or profile does
	// not exist in the store
	ErrNotFound = errors.New("not found")

	// ErrUpstreamFailure indicates the persistence or identity collaborator
	// failed; surfaced as-is, never retried here
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrInvalidProfile indicates a valid session with no matching profile
	// record; callers must force re-login
	ErrInvalidProfile = errors.New("invalid profile")
)

// InsufficientStockError rejects an outbound movement larger than the current
// stock. It carries the current value so the UI can tell the user how many
// units are actually available.
type InsufficientStockError struct {
	ProductID    string
	Requested    int
	CurrentStock int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.CurrentStock)
}

// IsInsufficientStock reports whether err is an insufficient-stock rejection
// and returns the typed error when it is.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}

// Invalid wraps ErrInvalidInput with a reason
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// NotFound wraps ErrNotFound with the entity kind and id
func NotFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// Upstream wraps a collaborator failure
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return errors.Join(ErrUpstreamFailure, err)
}
