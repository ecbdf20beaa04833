package repository

import (
	"cinema_api/model"

	"gorm.io/gorm"
)

type ScreeningRepository struct {
	*Repository[model.Screening]
}

func NewScreening(db *gorm.DB) *ScreeningRepository {
	return &ScreeningRepository{Repository: New[model.Screening](db)}
}

// GetAllByMovieId loads the screenings of a movie with their seat rows and
// seats, ordered by start time.
func (r *ScreeningRepository) GetAllByMovieId(movieId uint) ([]model.Screening, error) {
	var screenings []model.Screening
	err := r.db.
		Preload("ScreeningSeats", func(db *gorm.DB) *gorm.DB { return db.Order("screening_seats.id") }).
		Preload("ScreeningSeats.Seat").
		Where("movie_id = ?", movieId).
		Order("starts_at, id").
		Find(&screenings).Error
	if err != nil {
		return nil, err
	}
	return screenings, nil
}

// GetWithSeats returns nil, nil when the screening does not exist.
func (r *ScreeningRepository) GetWithSeats(id uint) (*model.Screening, error) {
	var screenings []model.Screening
	err := r.db.
		Preload("ScreeningSeats", func(db *gorm.DB) *gorm.DB { return db.Order("screening_seats.id") }).
		Preload("ScreeningSeats.Seat").
		Where("id = ?", id).
		Limit(1).
		Find(&screenings).Error
	if err != nil {
		return nil, err
	}
	if len(screenings) == 0 {
		return nil, nil
	}
	return &screenings[0], nil
}
