package repository

import "gorm.io/gorm"

// JunctionRepository handles join rows that are created in bulk and looked
// up by their foreign keys rather than by id.
type JunctionRepository[T any] struct {
	db *gorm.DB
}

func NewJunction[T any](db *gorm.DB) *JunctionRepository[T] {
	return &JunctionRepository[T]{db: db}
}

func (r *JunctionRepository[T]) InsertMany(rows []T) ([]T, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JunctionRepository[T]) GetWhere(query any, args ...any) ([]T, error) {
	var rows []T
	if err := r.db.Where(query, args...).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *JunctionRepository[T]) DeleteWhere(query any, args ...any) (int64, error) {
	var zero T
	res := r.db.Where(query, args...).Delete(&zero)
	return res.RowsAffected, res.Error
}
