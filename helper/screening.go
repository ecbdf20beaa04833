package helper

import (
	"cinema_api/constants"
	"cinema_api/model"
	"cinema_api/repository"

	"gorm.io/gorm"
)

// CheckScreenNumbers makes sure every screening input points at an existing
// auditorium. A missing one is reported as a *ScreenError.
func CheckScreenNumbers(db *gorm.DB, inputs []model.ScreeningInput) error {
	auditoriums := repository.New[model.Auditorium](db)
	for _, in := range inputs {
		auditorium, err := auditoriums.GetById(in.ScreenNumber)
		if err != nil {
			return err
		}
		if auditorium == nil {
			return &ScreenError{ScreenNumber: in.ScreenNumber, Err: ErrAuditoriumNotFound}
		}
	}
	return nil
}

// CreateScreening inserts a screening for movieId and one ScreeningSeat row
// for each of the first input.Capacity seats of the auditorium.
func CreateScreening(tx *gorm.DB, movieId uint, input model.ScreeningInput) (model.ScreeningOutput, error) {
	auditorium, err := repository.New[model.Auditorium](tx).GetById(input.ScreenNumber)
	if err != nil {
		return model.ScreeningOutput{}, err
	}
	if auditorium == nil {
		return model.ScreeningOutput{}, &ScreenError{ScreenNumber: input.ScreenNumber, Err: ErrAuditoriumNotFound}
	}

	var seats []model.Seat
	if err := tx.Where("auditorium_id = ?", auditorium.ID).Order("id").Limit(input.Capacity).Find(&seats).Error; err != nil {
		return model.ScreeningOutput{}, err
	}
	if len(seats) < input.Capacity {
		return model.ScreeningOutput{}, &ScreenError{ScreenNumber: auditorium.ID, Seats: len(seats), Err: ErrAuditoriumTooSmall}
	}

	screening := &model.Screening{
		MovieId:  movieId,
		StartsAt: input.StartsAt,
		Status:   constants.SCREENING_SCHEDULED,
	}
	if _, err := repository.New[model.Screening](tx).Insert(screening); err != nil {
		return model.ScreeningOutput{}, err
	}

	rows := make([]model.ScreeningSeat, 0, len(seats))
	for _, seat := range seats {
		rows = append(rows, model.ScreeningSeat{ScreeningId: screening.ID, SeatId: seat.ID})
	}
	if _, err := repository.NewJunction[model.ScreeningSeat](tx).InsertMany(rows); err != nil {
		return model.ScreeningOutput{}, err
	}

	return model.NewScreeningOutput(*screening, auditorium.ID, len(rows)), nil
}

func ScreeningOutputs(screenings []model.Screening) []model.ScreeningOutput {
	out := make([]model.ScreeningOutput, 0, len(screenings))
	for _, s := range screenings {
		screenNumber, capacity := s.ScreenNumberAndCapacity()
		out = append(out, model.NewScreeningOutput(s, screenNumber, capacity))
	}
	return out
}
