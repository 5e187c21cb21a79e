package insights

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale is one recorded sale fact. Revenue and profit are stored denormalized
// so insights stay valid even after the product's prices change.
type Sale struct {
	ID           string    `gorm:"type:uuid;primarykey" json:"id"`
	ProductID    string    `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price"`
	TotalRevenue float64   `gorm:"not null" json:"total_revenue"`
	TotalProfit  float64   `gorm:"not null" json:"total_profit"`
	SaleDate     time.Time `gorm:"type:date;not null;index" json:"sale_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for Sale model
func (Sale) TableName() string {
	return "sales"
}

// BeforeCreate assigns a uuid id
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// CreateSaleDTO is the request body for recording a sale
type CreateSaleDTO struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" validate:"gte=0"`
	SaleDate  string  `json:"sale_date" validate:"required"`
}

// InsightsResponse is the full insight report for a period
type InsightsResponse struct {
	Period    Period           `json:"period"`
	Source    string           `json:"source"`
	Products  []ProductInsight `json:"products"`
	Summary   InsightSummary   `json:"summary"`
	Alerts    []Alert          `json:"alerts"`
	Narrative string           `json:"narrative"`
}
