package insights

import (
	"errors"
	"math/rand"
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/config"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/service/product"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Sale sources for a report. Recorded uses the sales table; simulated
// generates plausible figures so new accounts see a populated report.
const (
	SourceRecorded  = "recorded"
	SourceSimulated = "simulated"
)

// ProductSource is the slice of the product store the insight engine needs
type ProductSource interface {
	GetByID(id string) (*product.Product, error)
	ListByUser(userID string) ([]*product.Product, error)
}

// InsightsService builds sale insight reports
type InsightsService struct {
	repo     Repository
	products ProductSource
	cfg      *config.Config
	log      *logger.Logger
	rng      *rand.Rand
	now      func() time.Time
}

// NewInsightsService creates a new insights service
func NewInsightsService(repo Repository, products ProductSource, cfg *config.Config, log *logger.Logger) *InsightsService {
	return &InsightsService{
		repo:     repo,
		products: products,
		cfg:      cfg,
		log:      log,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// RecordSale validates and stores a sale fact
func (s *InsightsService) RecordSale(userID string, dto *CreateSaleDTO) (*Sale, error) {
	if dto.Quantity <= 0 {
		return nil, apperr.Invalid("quantity must be positive, got %d", dto.Quantity)
	}
	if dto.UnitPrice <= 0 {
		return nil, apperr.Invalid("unit price must be positive, got %.2f", dto.UnitPrice)
	}

	saleDate, err := time.Parse(dateLayout, dto.SaleDate)
	if err != nil {
		return nil, apperr.Invalid("sale date must be in YYYY-MM-DD format, got %q", dto.SaleDate)
	}
	if saleDate.Format(dateLayout) > s.now().Format(dateLayout) {
		return nil, apperr.Invalid("sale date %s is in the future", dto.SaleDate)
	}

	if _, err := s.ownedProduct(dto.ProductID, userID); err != nil {
		return nil, err
	}

	quantity := float64(dto.Quantity)
	sale := &Sale{
		ProductID:    dto.ProductID,
		UserID:       userID,
		Quantity:     dto.Quantity,
		UnitPrice:    dto.UnitPrice,
		TotalRevenue: dto.UnitPrice * quantity,
		TotalProfit:  (dto.UnitPrice - dto.UnitCost) * quantity,
		SaleDate:     saleDate,
	}
	if err := s.repo.Insert(sale); err != nil {
		return nil, apperr.Upstream(err)
	}
	return sale, nil
}

// Report builds the insight report for a period from recorded or simulated
// sales.
func (s *InsightsService) Report(userID, periodStr, source string) (*InsightsResponse, error) {
	period, err := ParsePeriod(periodStr)
	if err != nil {
		return nil, apperr.Invalid("%v", err)
	}
	if source == "" {
		source = SourceRecorded
	}
	if source != SourceRecorded && source != SourceSimulated {
		return nil, apperr.Invalid("unknown source %q", source)
	}

	products, err := s.products.ListByUser(userID)
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	var sales []*Sale
	if source == SourceSimulated {
		sales = SimulateSales(products, period, s.now(), s.rng)
	} else {
		since := s.now().AddDate(0, 0, -(period.Days() - 1))
		sales, err = s.repo.ListByUserSince(userID, since)
		if err != nil {
			return nil, apperr.Upstream(err)
		}
	}

	named := make([]NamedProduct, 0, len(products))
	for _, p := range products {
		named = append(named, NamedProduct{ID: p.ID, Name: p.Name})
	}

	productInsights := Aggregate(named, sales, s.cfg.Insights.MarginThreshold)
	summary := Summarize(productInsights)

	s.log.Debug("insight report built",
		zap.String("user_id", userID),
		zap.String("period", string(period)),
		zap.String("source", source),
		zap.Int("products", len(productInsights)),
	)

	return &InsightsResponse{
		Period:    period,
		Source:    source,
		Products:  RankByProfit(productInsights),
		Summary:   summary,
		Alerts:    BuildAlerts(productInsights),
		Narrative: Narrative(period, summary),
	}, nil
}

func (s *InsightsService) ownedProduct(productID, userID string) (*product.Product, error) {
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
