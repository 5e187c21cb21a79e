package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDetailsFillsSyntheticFields(t *testing.T) {
	row := ProductStock{
		ProductID:    "p1",
		UserID:       "u1",
		CurrentStock: 12,
		MinimumStock: 5,
	}

	details := row.ToDetails()
	assert.Equal(t, 12, details.CurrentStock)
	assert.Equal(t, 50, details.MaximumStock)
	assert.Equal(t, "principal", details.Location)

	low := ProductStock{MinimumStock: 3}
	assert.Equal(t, 100, low.ToDetails().MaximumStock)
}

func TestToPersistenceDropsSyntheticFields(t *testing.T) {
	details := StockDetails{
		ProductID:    "p1",
		UserID:       "u1",
		CurrentStock: 7,
		MinimumStock: 5,
		MaximumStock: 999,
		Location:     "depósito",
	}

	row := details.ToPersistence()
	assert.Equal(t, "p1", row.ProductID)
	assert.Equal(t, 7, row.CurrentStock)
	assert.Equal(t, 5, row.MinimumStock)

	// synthetic fields round-trip back to defaults, not stored values
	back := row.ToDetails()
	assert.Equal(t, 100, back.MaximumStock)
	assert.Equal(t, "principal", back.Location)
}
