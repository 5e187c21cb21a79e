package inventory

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovementType is the direction of a stock movement
type MovementType string

const (
	// MovementEntrada is an inbound movement
	MovementEntrada MovementType = "entrada"
	// MovementSaida is an outbound movement
	MovementSaida MovementType = "saida"
)

// MovementReason categorizes why a movement happened
type MovementReason string

const (
	ReasonCompra MovementReason = "compra"
	ReasonVenda  MovementReason = "venda"
	ReasonPerda  MovementReason = "perda"
	ReasonAjuste MovementReason = "ajuste"
)

// allowedReasons restricts reasons per direction: purchases only come in,
// sales and losses only go out, adjustments go both ways.
var allowedReasons = map[MovementType][]MovementReason{
	MovementEntrada: {ReasonCompra, ReasonAjuste},
	MovementSaida:   {ReasonVenda, ReasonPerda, ReasonAjuste},
}

// ReasonAllowed reports whether the reason is valid for the movement type
func ReasonAllowed(t MovementType, r MovementReason) bool {
	for _, allowed := range allowedReasons[t] {
		if allowed == r {
			return true
		}
	}
	return false
}

// StockStatus classifies current stock against the minimum threshold
type StockStatus string

const (
	StatusHealthy  StockStatus = "healthy"
	StatusWarning  StockStatus = "warning"
	StatusCritical StockStatus = "critical"
)

// StatusOf classifies a stock level. This is a pure classification with no
// hysteresis: a product sitting at the threshold flips on every unit change.
func StatusOf(currentStock, minimumStock int) StockStatus {
	if currentStock <= 0 {
		return StatusCritical
	}
	if currentStock <= minimumStock {
		return StatusWarning
	}
	return StatusHealthy
}

// ProductStock is the per-product stock row (1:1 with products). It is never
// edited directly except for the minimum threshold; the current level only
// changes through movement application.
type ProductStock struct {
	ProductID    string    `gorm:"type:uuid;primarykey" json:"product_id"`
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CurrentStock int       `gorm:"not null;default:0" json:"current_stock"`
	MinimumStock int       `gorm:"not null;default:5" json:"minimum_stock"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for ProductStock model
func (ProductStock) TableName() string {
	return "product_stocks"
}

// StockMovement is an immutable ledger fact. Date is the user-assigned
// calendar day; CreatedAt orders movements within a day.
type StockMovement struct {
	ID          string         `gorm:"type:uuid;primarykey" json:"id"`
	ProductID   string         `gorm:"type:uuid;not null;index" json:"product_id"`
	UserID      string         `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        MovementType   `gorm:"not null" json:"type"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	Reason      MovementReason `gorm:"not null" json:"reason"`
	Observation *string        `json:"observation"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	CreatedAt   time.Time      `json:"created_at"`
}

// TableName specifies the table name for StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}

// BeforeCreate assigns a uuid id
func (m *StockMovement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CreateMovementDTO is the request body for registering a movement
type CreateMovementDTO struct {
	ProductID   string  `json:"product_id" validate:"required,uuid"`
	Type        string  `json:"type" validate:"required,oneof=entrada saida"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	Reason      string  `json:"reason" validate:"required,oneof=compra venda perda ajuste"`
	Observation *string `json:"observation"`
	Date        string  `json:"date" validate:"required"`
}

// SetMinimumStockDTO is the request body for updating the minimum threshold
type SetMinimumStockDTO struct {
	MinimumStock int `json:"minimum_stock" validate:"gte=0"`
}

// StockResponse is the stock data in responses, with the derived status
type StockResponse struct {
	ProductID    string      `json:"product_id"`
	CurrentStock int         `json:"current_stock"`
	MinimumStock int         `json:"minimum_stock"`
	Status       StockStatus `json:"status"`
}

// ToStockResponse converts ProductStock to StockResponse
func (s *ProductStock) ToStockResponse() StockResponse {
	return StockResponse{
		ProductID:    s.ProductID,
		CurrentStock: s.CurrentStock,
		MinimumStock: s.MinimumStock,
		Status:       StatusOf(s.CurrentStock, s.MinimumStock),
	}
}

// MovementResponse is a movement plus the stock level it produced
type MovementResponse struct {
	Movement *StockMovement `json:"movement"`
	Stock    StockResponse  `json:"stock"`
}
