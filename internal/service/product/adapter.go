package product

import "time"

// ProductDetails is the application-side domain shape. The external schema
// predates several of these fields; the adapter keeps the mapping in one
// place so schema drift shows up here and nowhere else.
//
// Synthetic fields (not backed by the store, defaulted on read, dropped on
// write): Description, SKU, Barcode, Category, IsActive, and the split of
// AdditionalCosts into Shipping/Tax/Commission/Other.
type ProductDetails struct {
	ID             string
	UserID         string
	Name           string
	Description    *string
	PurchasePrice  float64
	SalePrice      *float64
	DesiredMargin  *float64
	ShippingCost   float64
	TaxCost        float64
	CommissionCost float64
	OtherCosts     float64
	SKU            *string
	Barcode        *string
	Category       *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AdditionalCosts returns the folded cost total the store persists
func (d *ProductDetails) AdditionalCosts() float64 {
	return d.ShippingCost + d.TaxCost + d.CommissionCost + d.OtherCosts
}

// ToDomain maps a stored row to the domain shape, filling synthetic fields
// with fixed defaults. It never fails: missing schema fields always have a
// defined value.
func ToDomain(row *Product) *ProductDetails {
	return &ProductDetails{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Description:   nil,
		PurchasePrice: row.PurchasePrice,
		SalePrice:     row.SalePrice,
		DesiredMargin: row.DesiredMargin,
		// The store keeps one folded figure; it lands in OtherCosts so the
		// domain total stays exact.
		ShippingCost:   0,
		TaxCost:        0,
		CommissionCost: 0,
		OtherCosts:     row.AdditionalCosts,
		SKU:            nil,
		Barcode:        nil,
		Category:       nil,
		IsActive:       true,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

// ToPersistence maps the domain shape to the stored row. The four cost
// components fold into additional_costs; synthetic fields are dropped.
func ToPersistence(domain *ProductDetails) *Product {
	return &Product{
		ID:              domain.ID,
		UserID:          domain.UserID,
		Name:            domain.Name,
		PurchasePrice:   domain.PurchasePrice,
		SalePrice:       domain.SalePrice,
		DesiredMargin:   domain.DesiredMargin,
		AdditionalCosts: domain.AdditionalCosts(),
		CreatedAt:       domain.CreatedAt,
		UpdatedAt:       domain.UpdatedAt,
	}
}
