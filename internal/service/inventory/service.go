package inventory

import (
	"errors"
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/config"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/service/product"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ProductSource is the slice of the product store the inventory needs:
// ownership checks and the product list for lazy stock creation.
type ProductSource interface {
	GetByID(id string) (*product.Product, error)
	ListByUser(userID string) ([]*product.Product, error)
}

// InventoryService handles stock movements and levels
type InventoryService struct {
	repo     Repository
	products ProductSource
	cfg      *config.Config
	log      *logger.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo Repository, products ProductSource, cfg *config.Config, log *logger.Logger) *InventoryService {
	return &InventoryService{repo: repo, products: products, cfg: cfg, log: log}
}

// RegisterMovement validates and applies a stock movement. Rejections leave
// the stock level untouched.
func (s *InventoryService) RegisterMovement(userID string, dto *CreateMovementDTO) (*MovementResponse, error) {
	if dto.Quantity <= 0 {
		return nil, apperr.Invalid("quantity must be positive, got %d", dto.Quantity)
	}

	movementType := MovementType(dto.Type)
	reason := MovementReason(dto.Reason)
	if !ReasonAllowed(movementType, reason) {
		return nil, apperr.Invalid("reason %q is not valid for movement type %q", dto.Reason, dto.Type)
	}

	date, err := time.Parse(dateLayout, dto.Date)
	if err != nil {
		return nil, apperr.Invalid("date must be in YYYY-MM-DD format, got %q", dto.Date)
	}
	if date.Format(dateLayout) > time.Now().Format(dateLayout) {
		return nil, apperr.Invalid("movement date %s is in the future", dto.Date)
	}

	if _, err := s.ownedProduct(dto.ProductID, userID); err != nil {
		return nil, err
	}

	movement := &StockMovement{
		ProductID:   dto.ProductID,
		UserID:      userID,
		Type:        movementType,
		Quantity:    dto.Quantity,
		Reason:      reason,
		Observation: dto.Observation,
		Date:        date,
	}

	stock, err := s.repo.ApplyMovement(movement, s.seedStock(dto.ProductID, userID))
	if err != nil {
		if ise, ok := apperr.IsInsufficientStock(err); ok {
			s.log.Info("movement rejected: insufficient stock",
				zap.String("product_id", ise.ProductID),
				zap.Int("requested", ise.Requested),
				zap.Int("current_stock", ise.CurrentStock),
			)
			return nil, err
		}
		return nil, apperr.Upstream(err)
	}

	return &MovementResponse{Movement: movement, Stock: stock.ToStockResponse()}, nil
}

// DeleteMovement removes a movement and reverses its effect on the stock
// level. The reversal is best effort: reversing an entrada whose units were
// already consumed floors the level at zero instead of failing.
func (s *InventoryService) DeleteMovement(id, userID string) (*StockResponse, error) {
	movement, err := s.repo.GetMovement(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("movement", id)
		}
		return nil, apperr.Upstream(err)
	}

	stock, err := s.repo.ReverseMovement(movement)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("movement", id)
		}
		return nil, apperr.Upstream(err)
	}

	response := stock.ToStockResponse()
	return &response, nil
}

// ListMovements lists a user's movements, newest first
func (s *InventoryService) ListMovements(userID string, filter MovementFilter) ([]*StockMovement, error) {
	movements, err := s.repo.ListMovements(userID, filter)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	return movements, nil
}

// ListStocks returns the stock level for every product the user owns,
// creating missing rows at zero units on first sight.
func (s *InventoryService) ListStocks(userID string) ([]StockResponse, error) {
	products, err := s.products.ListByUser(userID)
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	stocks := make([]StockResponse, 0, len(products))
	for _, p := range products {
		stock, err := s.repo.EnsureStock(s.seedStock(p.ID, userID))
		if err != nil {
			return nil, apperr.Upstream(err)
		}
		stocks = append(stocks, stock.ToStockResponse())
	}
	return stocks, nil
}

// GetStock returns the stock level for one product, creating the row when
// it does not exist yet.
func (s *InventoryService) GetStock(productID, userID string) (*StockResponse, error) {
	if _, err := s.ownedProduct(productID, userID); err != nil {
		return nil, err
	}
	stock, err := s.repo.EnsureStock(s.seedStock(productID, userID))
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	response := stock.ToStockResponse()
	return &response, nil
}

// GetStockDetails returns the widened stock shape for one product
func (s *InventoryService) GetStockDetails(productID, userID string) (*StockDetails, error) {
	if _, err := s.ownedProduct(productID, userID); err != nil {
		return nil, err
	}
	stock, err := s.repo.EnsureStock(s.seedStock(productID, userID))
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	details := stock.ToDetails()
	return &details, nil
}

// SetMinimumStock updates the alert threshold for a product
func (s *InventoryService) SetMinimumStock(productID, userID string, dto *SetMinimumStockDTO) (*StockResponse, error) {
	if dto.MinimumStock < 0 {
		return nil, apperr.Invalid("minimum stock must not be negative, got %d", dto.MinimumStock)
	}
	if _, err := s.ownedProduct(productID, userID); err != nil {
		return nil, err
	}
	stock, err := s.repo.SetMinimumStock(productID, userID, dto.MinimumStock)
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	response := stock.ToStockResponse()
	return &response, nil
}

// DailySummary aggregates a single day's movements
func (s *InventoryService) DailySummary(userID, dateStr string) (*Summary, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperr.Invalid("date must be in YYYY-MM-DD format, got %q", dateStr)
	}
	return s.summarize(userID, date, date)
}

// PeriodSummary aggregates movements over an inclusive date range
func (s *InventoryService) PeriodSummary(userID, startStr, endStr string) (*Summary, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return nil, apperr.Invalid("start date must be in YYYY-MM-DD format, got %q", startStr)
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return nil, apperr.Invalid("end date must be in YYYY-MM-DD format, got %q", endStr)
	}
	if end.Before(start) {
		return nil, apperr.Invalid("end date %s is before start date %s", endStr, startStr)
	}
	return s.summarize(userID, start, end)
}

func (s *InventoryService) summarize(userID string, from, to time.Time) (*Summary, error) {
	movements, err := s.repo.ListMovements(userID, MovementFilter{From: &from, To: &to})
	if err != nil {
		return nil, apperr.Upstream(err)
	}
	summary := Summarize(movements)
	return &summary, nil
}

// seedStock builds the row used to lazily create missing stock entries,
// narrowed from the domain shape with the configured minimum.
func (s *InventoryService) seedStock(productID, userID string) ProductStock {
	details := StockDetails{
		ProductID:    productID,
		UserID:       userID,
		MinimumStock: s.cfg.Inventory.DefaultMinimumStock,
	}
	return details.ToPersistence()
}

// ownedProduct checks the product exists and belongs to the user. Products
// owned by someone else read as not found.
func (s *InventoryService) ownedProduct(productID, userID string) (*product.Product, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product", productID)
		}
		return nil, apperr.Upstream(err)
	}
	if p.UserID != userID {
		return nil, apperr.NotFound("product", productID)
	}
	return p, nil
}
