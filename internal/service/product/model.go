package product

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is the persisted row, mirroring the external store's schema. The
// richer domain shape lives in adapter.go; fields the schema lacks are
// synthesized on the way in and dropped on the way out.
type Product struct {
	ID              string         `gorm:"type:uuid;primarykey" json:"id"`
	UserID          string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string         `gorm:"not null" json:"name"`
	PurchasePrice   float64        `gorm:"not null" json:"purchase_price"`
	SalePrice       *float64       `json:"sale_price"`
	DesiredMargin   *float64       `json:"desired_margin"`
	AdditionalCosts float64        `gorm:"not null;default:0" json:"additional_costs"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Product model
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns a uuid id
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreateProductDTO is the data transfer object for creating a product. The
// cost components are accepted separately and folded into additional_costs
// by the persistence adapter.
type CreateProductDTO struct {
	Name            string   `json:"name" validate:"required"`
	PurchasePrice   float64  `json:"purchase_price" validate:"gte=0"`
	SalePrice       *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	DesiredMargin   *float64 `json:"desired_margin" validate:"omitempty,gte=0,lt=100"`
	ShippingCost    float64  `json:"shipping_cost" validate:"gte=0"`
	TaxCost         float64  `json:"tax_cost" validate:"gte=0"`
	CommissionCost  float64  `json:"commission_cost" validate:"gte=0"`
	AdditionalCosts float64  `json:"additional_costs" validate:"gte=0"`
}

// UpdateProductDTO is the data transfer object for updating a product
type UpdateProductDTO struct {
	Name            *string  `json:"name"`
	PurchasePrice   *float64 `json:"purchase_price" validate:"omitempty,gte=0"`
	SalePrice       *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	DesiredMargin   *float64 `json:"desired_margin" validate:"omitempty,gte=0,lt=100"`
	AdditionalCosts *float64 `json:"additional_costs" validate:"omitempty,gte=0"`
}

// ProductResponse is the product data in responses, enriched with the
// computed pricing fields
type ProductResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	PurchasePrice   float64   `json:"purchase_price"`
	SalePrice       *float64  `json:"sale_price"`
	DesiredMargin   *float64  `json:"desired_margin"`
	AdditionalCosts float64   `json:"additional_costs"`
	TotalCost       float64   `json:"total_cost"`
	RealMargin      *float64  `json:"real_margin"`
	IdealPrice      *float64  `json:"ideal_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SimulationDTO is the request body for a pricing simulation
type SimulationDTO struct {
	PurchasePrice   float64  `json:"purchase_price" validate:"gte=0"`
	AdditionalCosts float64  `json:"additional_costs" validate:"gte=0"`
	SalePrice       float64  `json:"sale_price" validate:"gte=0"`
	Quantity        int      `json:"quantity" validate:"gte=1"`
	ProfitGoal      *float64 `json:"profit_goal" validate:"omitempty,gte=0"`
	DesiredMargin   *float64 `json:"desired_margin" validate:"omitempty,gte=0,lt=100"`
}
