package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// BaseRepository provides common CRUD operations for entities keyed by a
// uuid string primary key.
type BaseRepository[T any] struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance
func NewBaseRepository[T any](db *Database) *BaseRepository[T] {
	return &BaseRepository[T]{
		db: db.DB,
	}
}

// Insert creates a new entity
func (r *BaseRepository[T]) Insert(entity *T) error {
	if err := r.db.Create(entity).Error; err != nil {
		return fmt.Errorf("failed to insert entity: %w", err)
	}
	return nil
}

// GetByID retrieves an entity by its ID
func (r *BaseRepository[T]) GetByID(id string) (*T, error) {
	var entity T
	err := r.db.Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// GetByField retrieves an entity by a specific field
func (r *BaseRepository[T]) GetByField(field string, value interface{}) (*T, error) {
	var entity T
	err := r.db.Where(field+" = ?", value).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}
	return &entity, nil
}

// GetWhere retrieves entities matching conditions
func (r *BaseRepository[T]) GetWhere(conditions map[string]interface{}, limit, offset int) ([]*T, error) {
	var entities []*T
	query := r.db.Model(new(T))

	for field, value := range conditions {
		query = query.Where(field+" = ?", value)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to get entities: %w", err)
	}
	return entities, nil
}

// UpdateFields updates specific fields of an entity
func (r *BaseRepository[T]) UpdateFields(id string, updates map[string]interface{}) error {
	result := r.db.Model(new(T)).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByID removes an entity by its ID and reports whether a row was deleted
func (r *BaseRepository[T]) DeleteByID(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete entity: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Count counts entities matching conditions
func (r *BaseRepository[T]) Count(conditions map[string]interface{}) (int64, error) {
	var count int64
	query := r.db.Model(new(T))

	for field, value := range conditions {
		query = query.Where(field+" = ?", value)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return count, nil
}

// GetDB exposes the underlying gorm handle for domain-specific queries
func (r *BaseRepository[T]) GetDB() *gorm.DB {
	return r.db
}
