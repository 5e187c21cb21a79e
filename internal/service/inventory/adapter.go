package inventory

// StockDetails is the stock shape the rest of the app works with. The stored
// row only tracks the current level and the minimum threshold; the remaining
// fields are filled with defaults so callers get a stable shape.
type StockDetails struct {
	ProductID    string `json:"product_id"`
	UserID       string `json:"user_id"`
	CurrentStock int    `json:"current_stock"`
	MinimumStock int    `json:"minimum_stock"`
	MaximumStock int    `json:"maximum_stock"`
	Location     string `json:"location"`
}

// ToDetails widens a stored row into the domain shape. The maximum defaults
// to ten times the minimum (floor 100) and the location to the single
// default warehouse.
func (s *ProductStock) ToDetails() StockDetails {
	maximum := s.MinimumStock * 10
	if maximum < 100 {
		maximum = 100
	}
	return StockDetails{
		ProductID:    s.ProductID,
		UserID:       s.UserID,
		CurrentStock: s.CurrentStock,
		MinimumStock: s.MinimumStock,
		MaximumStock: maximum,
		Location:     "principal",
	}
}

// ToPersistence narrows the domain shape back to the stored columns.
// Maximum stock and location are not persisted.
func (d *StockDetails) ToPersistence() ProductStock {
	return ProductStock{
		ProductID:    d.ProductID,
		UserID:       d.UserID,
		CurrentStock: d.CurrentStock,
		MinimumStock: d.MinimumStock,
	}
}
