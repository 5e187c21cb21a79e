package insights

import (
	"time"

	"lucrofacil/internal/pkg/database"
)

// Repository is the sale persistence boundary
type Repository interface {
	Insert(sale *Sale) error
	ListByUserSince(userID string, since time.Time) ([]*Sale, error)
}

// SaleRepository handles sale data access
type SaleRepository struct {
	*database.BaseRepository[Sale]
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *database.Database) Repository {
	return &SaleRepository{
		BaseRepository: database.NewBaseRepository[Sale](db),
	}
}

// ListByUserSince lists a user's sales from the given date onward
func (r *SaleRepository) ListByUserSince(userID string, since time.Time) ([]*Sale, error) {
	var sales []*Sale
	err := r.GetDB().
		Where("user_id = ? AND sale_date >= ?", userID, since.Format("2006-01-02")).
		Order("sale_date ASC, created_at ASC").
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}
