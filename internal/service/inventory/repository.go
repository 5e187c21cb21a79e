package inventory

import (
	"time"

	"lucrofacil/internal/pkg/apperr"
	"lucrofacil/internal/pkg/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovementFilter narrows a movement listing
type MovementFilter struct {
	ProductID string
	Type      MovementType
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// Repository is the inventory persistence boundary. ApplyMovement and
// ReverseMovement are the only ways current stock levels change.
type Repository interface {
	GetStock(productID string) (*ProductStock, error)
	EnsureStock(seed ProductStock) (*ProductStock, error)
	ListStocksByUser(userID string) ([]*ProductStock, error)
	SetMinimumStock(productID, userID string, minimum int) (*ProductStock, error)
	ApplyMovement(m *StockMovement, seed ProductStock) (*ProductStock, error)
	GetMovement(id, userID string) (*StockMovement, error)
	ListMovements(userID string, filter MovementFilter) ([]*StockMovement, error)
	ReverseMovement(m *StockMovement) (*ProductStock, error)
}

// InventoryRepository is the gorm-backed Repository
type InventoryRepository struct {
	db *database.Database
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *database.Database) Repository {
	return &InventoryRepository{db: db}
}

// GetStock fetches the stock row for a product
func (r *InventoryRepository) GetStock(productID string) (*ProductStock, error) {
	var stock ProductStock
	if err := r.db.Where("product_id = ?", productID).First(&stock).Error; err != nil {
		return nil, err
	}
	return &stock, nil
}

// EnsureStock fetches the stock row, creating it from the seed when no row
// exists yet.
func (r *InventoryRepository) EnsureStock(seed ProductStock) (*ProductStock, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoNothing: true,
	}).Create(&seed).Error
	if err != nil {
		return nil, err
	}
	return r.GetStock(seed.ProductID)
}

// ListStocksByUser lists stock rows for a user
func (r *InventoryRepository) ListStocksByUser(userID string) ([]*ProductStock, error) {
	var stocks []*ProductStock
	if err := r.db.Where("user_id = ?", userID).Order("product_id").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// SetMinimumStock updates the minimum threshold, creating the row when missing
func (r *InventoryRepository) SetMinimumStock(productID, userID string, minimum int) (*ProductStock, error) {
	seed := ProductStock{ProductID: productID, UserID: userID, MinimumStock: minimum}
	if _, err := r.EnsureStock(seed); err != nil {
		return nil, err
	}
	result := r.db.Model(&ProductStock{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Update("minimum_stock", minimum)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetStock(productID)
}

// ApplyMovement persists the movement and adjusts the stock level in one
// transaction. The adjustment is a conditional single-statement update, so
// concurrent outbound movements cannot drive the level negative: the row
// update only matches when enough units remain, and a miss means rejection.
func (r *InventoryRepository) ApplyMovement(m *StockMovement, seed ProductStock) (*ProductStock, error) {
	var stock ProductStock
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		var result *gorm.DB
		if m.Type == MovementEntrada {
			result = tx.Model(&ProductStock{}).
				Where("product_id = ?", m.ProductID).
				Update("current_stock", gorm.Expr("current_stock + ?", m.Quantity))
		} else {
			result = tx.Model(&ProductStock{}).
				Where("product_id = ? AND current_stock >= ?", m.ProductID, m.Quantity).
				Update("current_stock", gorm.Expr("current_stock - ?", m.Quantity))
		}
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var current ProductStock
			if err := tx.Where("product_id = ?", m.ProductID).First(&current).Error; err != nil {
				return err
			}
			return &apperr.InsufficientStockError{
				ProductID:    m.ProductID,
				Requested:    m.Quantity,
				CurrentStock: current.CurrentStock,
			}
		}

		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", m.ProductID).First(&stock).Error
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

// GetMovement fetches a movement scoped to its owner
func (r *InventoryRepository) GetMovement(id, userID string) (*StockMovement, error) {
	var movement StockMovement
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&movement).Error; err != nil {
		return nil, err
	}
	return &movement, nil
}

// ListMovements lists a user's movements, newest first, with optional filters
func (r *InventoryRepository) ListMovements(userID string, filter MovementFilter) ([]*StockMovement, error) {
	query := r.db.Where("user_id = ?", userID)
	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format("2006-01-02"))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var movements []*StockMovement
	if err := query.Order("date DESC, created_at DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// ReverseMovement deletes the movement and applies the opposite stock delta
// in one transaction. Reversing an outbound movement adds the units back;
// reversing an inbound one removes them, floored at zero because the units
// may already have left through later movements.
func (r *InventoryRepository) ReverseMovement(m *StockMovement) (*ProductStock, error) {
	var stock ProductStock
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", m.ID).Delete(&StockMovement{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var update *gorm.DB
		if m.Type == MovementSaida {
			update = tx.Model(&ProductStock{}).
				Where("product_id = ?", m.ProductID).
				Update("current_stock", gorm.Expr("current_stock + ?", m.Quantity))
		} else {
			update = tx.Model(&ProductStock{}).
				Where("product_id = ?", m.ProductID).
				Update("current_stock", gorm.Expr("GREATEST(current_stock - ?, 0)", m.Quantity))
		}
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("product_id = ?", m.ProductID).First(&stock).Error
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}
