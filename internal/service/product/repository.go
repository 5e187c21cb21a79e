package product

import (
	"fmt"

	"lucrofacil/internal/pkg/database"
)

// Repository is the persistence contract the product service depends on
type Repository interface {
	GetByID(id string) (*Product, error)
	ListByUser(userID string) ([]*Product, error)
	Insert(p *Product) error
	UpdateFields(id string, updates map[string]interface{}) error
	DeleteByID(id string) (bool, error)
}

// ProductRepository handles product data access
type ProductRepository struct {
	*database.BaseRepository[Product]
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *database.Database) Repository {
	return &ProductRepository{
		BaseRepository: database.NewBaseRepository[Product](db),
	}
}

// ListByUser retrieves all products owned by a user, oldest first
func (r *ProductRepository) ListByUser(userID string) ([]*Product, error) {
	var products []*Product
	err := r.GetDB().
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
