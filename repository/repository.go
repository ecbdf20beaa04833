// Package repository wraps GORM with small per-entity data access types.
package repository

import (
	"cinema_api/model"
	"errors"

	"gorm.io/gorm"
)

// IRepository is the CRUD contract every entity repository satisfies.
type IRepository[T any] interface {
	GetAll() ([]T, error)
	GetById(id uint) (*T, error)
	Insert(entity *T) (*T, error)
	Update(entity *T) (*T, error)
	DeleteById(id uint) (*T, error)
}

var _ IRepository[model.Movie] = (*Repository[model.Movie])(nil)

type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// WithTx returns the same repository bound to tx.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx}
}

func (r *Repository[T]) GetAll() ([]T, error) {
	var rows []T
	if err := r.db.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetById returns nil, nil when no row has the given id.
func (r *Repository[T]) GetById(id uint) (*T, error) {
	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *Repository[T]) Insert(entity *T) (*T, error) {
	if err := r.db.Create(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// Update saves every field of entity; UpdatedAt is refreshed by GORM.
func (r *Repository[T]) Update(entity *T) (*T, error) {
	if err := r.db.Save(entity).Error; err != nil {
		return nil, err
	}
	return entity, nil
}

// DeleteById removes the row and returns it as it was before deletion.
func (r *Repository[T]) DeleteById(id uint) (*T, error) {
	row, err := r.GetById(id)
	if err != nil || row == nil {
		return nil, err
	}
	if err := r.db.Delete(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
