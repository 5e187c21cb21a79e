package product

import (
	"errors"
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/logger"
	"lucrofacil/internal/pricing"

	"gorm.io/gorm"
)

// ProductService handles product business logic
type ProductService struct {
	repo   Repository
	logger *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(repo Repository, log *logger.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: log,
	}
}

// toResponse enriches the domain shape with the computed pricing fields.
// Rows reach it through ToDomain, so every read goes through the adapter.
func toResponse(d *ProductDetails) ProductResponse {
	additionalCosts := d.AdditionalCosts()
	resp := ProductResponse{
		ID:              d.ID,
		Name:            d.Name,
		PurchasePrice:   d.PurchasePrice,
		SalePrice:       d.SalePrice,
		DesiredMargin:   d.DesiredMargin,
		AdditionalCosts: additionalCosts,
		TotalCost:       pricing.TotalCost(d.PurchasePrice, additionalCosts),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	if d.SalePrice != nil {
		margin := pricing.RealMargin(*d.SalePrice, resp.TotalCost)
		resp.RealMargin = &margin
	}
	if d.DesiredMargin != nil && *d.DesiredMargin < 100 {
		ideal := pricing.IdealPrice(resp.TotalCost, *d.DesiredMargin)
		resp.IdealPrice = &ideal
	}

	return resp
}

// Create creates a new product for the given user. The draft is built as the
// domain shape and narrowed through the adapter, which folds the separate
// cost components into the single stored figure.
func (s *ProductService) Create(dto CreateProductDTO, userID string) (ProductResponse, error) {
	details := &ProductDetails{
		UserID:         userID,
		Name:           dto.Name,
		PurchasePrice:  dto.PurchasePrice,
		SalePrice:      dto.SalePrice,
		DesiredMargin:  dto.DesiredMargin,
		ShippingCost:   dto.ShippingCost,
		TaxCost:        dto.TaxCost,
		CommissionCost: dto.CommissionCost,
		OtherCosts:     dto.AdditionalCosts,
		IsActive:       true,
	}

	product := ToPersistence(details)
	if err := s.repo.Insert(product); err != nil {
		return ProductResponse{}, apperr.Upstream(err)
	}

	return toResponse(ToDomain(product)), nil
}

// GetByID retrieves one of the user's products
func (s *ProductService) GetByID(id, userID string) (ProductResponse, error) {
	product, err := s.ownedProduct(id, userID)
	if err != nil {
		return ProductResponse{}, err
	}
	return toResponse(ToDomain(product)), nil
}

// ListByUser retrieves all products owned by the user
func (s *ProductService) ListByUser(userID string) ([]ProductResponse, error) {
	products, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, apperr.Upstream(err)
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toResponse(ToDomain(p)))
	}
	return responses, nil
}

// Update applies a partial update to one of the user's products
func (s *ProductService) Update(id string, dto UpdateProductDTO, userID string) (ProductResponse, error) {
	product, err := s.ownedProduct(id, userID)
	if err != nil {
		return ProductResponse{}, err
	}

	updates := make(map[string]interface{})
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.PurchasePrice != nil {
		updates["purchase_price"] = *dto.PurchasePrice
	}
	if dto.SalePrice != nil {
		updates["sale_price"] = *dto.SalePrice
	}
	if dto.DesiredMargin != nil {
		updates["desired_margin"] = *dto.DesiredMargin
	}
	if dto.AdditionalCosts != nil {
		updates["additional_costs"] = *dto.AdditionalCosts
	}

	if len(updates) == 0 {
		return toResponse(ToDomain(product)), nil
	}
	updates["updated_at"] = time.Now()

	if err := s.repo.UpdateFields(id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductResponse{}, apperr.NotFound("product", id)
		}
		return ProductResponse{}, apperr.Upstream(err)
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return ProductResponse{}, apperr.Upstream(err)
	}
	return toResponse(ToDomain(updated)), nil
}

// Delete removes one of the user's products. Stock and movement rows for the
// product are not cascaded here; the inventory service skips orphans.
func (s *ProductService) Delete(id, userID string) error {
	if _, err := s.ownedProduct(id, userID); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(id)
	if err != nil {
		return apperr.Upstream(err)
	}
	if !deleted {
		return apperr.NotFound("product", id)
	}
	return nil
}

// Simulate runs the pricing projection for an ad-hoc scenario
func (s *ProductService) Simulate(dto SimulationDTO) SimulationResponse {
	totalCost := pricing.TotalCost(dto.PurchasePrice, dto.AdditionalCosts)
	result := pricing.Simulate(dto.SalePrice, totalCost, dto.Quantity, dto.ProfitGoal)

	resp := SimulationResponse{
		TotalCost:        totalCost,
		SimulationResult: result,
	}
	if dto.DesiredMargin != nil && *dto.DesiredMargin < 100 {
		ideal := pricing.IdealPrice(totalCost, *dto.DesiredMargin)
		resp.IdealPrice = &ideal
	}
	return resp
}

// SimulationResponse wraps the pricing projection with the derived cost
type SimulationResponse struct {
	TotalCost  float64  `json:"total_cost"`
	IdealPrice *float64 `json:"ideal_price"`
	pricing.SimulationResult
}

// ownedProduct loads a product and enforces ownership. A product owned by a
// different user reads as not found so ids cannot be probed.
func (s *ProductService) ownedProduct(id, userID string) (*Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product", id)
		}
		return nil, apperr.Upstream(err)
	}
	if product.UserID != userID {
		return nil, apperr.NotFound("product", id)
	}
	return product, nil
}
