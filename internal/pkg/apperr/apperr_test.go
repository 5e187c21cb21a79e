package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidWrapsSentinel(t *testing.T) {
	err := Invalid("quantity must be positive, got %d", -3)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "got -3")
}

func TestNotFound(t *testing.T) {
	err := NotFound("movement", "abc-123")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "movement abc-123")
}

func TestUpstreamNil(t *testing.T) {
	assert.NoError(t, Upstream(nil))

	wrapped := Upstream(errors.New("connection refused"))
	assert.True(t, errors.Is(wrapped, ErrUpstreamFailure))
}

func TestIsInsufficientStock(t *testing.T) {
	base := &InsufficientStockError{ProductID: "p1", Requested: 10, CurrentStock: 4}
	wrapped := fmt.Errorf("apply movement: %w", base)

	ise, ok := IsInsufficientStock(wrapped)
	require.True(t, ok)
	assert.Equal(t, 4, ise.CurrentStock)
	assert.Equal(t, 10, ise.Requested)

	_, ok = IsInsufficientStock(errors.New("other"))
	assert.False(t, ok)
}
