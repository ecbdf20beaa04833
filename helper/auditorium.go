package helper

import (
	"cinema_api/model"
	"cinema_api/repository"

	"gorm.io/gorm"
)

// RowLabel turns a zero based row index into A, B, ... Z, AA, AB, ...
func RowLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}

// CreateAuditorium inserts the auditorium and lays out Capacity seats in rows
// of SeatsPerRow.
func CreateAuditorium(db *gorm.DB, input model.CreateAuditoriumInput) (*model.Auditorium, error) {
	auditorium := &model.Auditorium{Capacity: input.Capacity}
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.New[model.Auditorium](tx).Insert(auditorium); err != nil {
			return err
		}
		seats := make([]model.Seat, 0, input.Capacity)
		for i := 0; i < input.Capacity; i++ {
			seats = append(seats, model.Seat{
				AuditoriumId: auditorium.ID,
				Row:          RowLabel(i / input.SeatsPerRow),
				Number:       i%input.SeatsPerRow + 1,
			})
		}
		_, err := repository.NewJunction[model.Seat](tx).InsertMany(seats)
		return err
	})
	if err != nil {
		return nil, err
	}
	return auditorium, nil
}
