package helper

import (
	"cinema_api/model"
	"cinema_api/repository"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SeatChannel(screeningId uint) string {
	return fmt.Sprintf("screening:%d", screeningId)
}

// SeatMap returns nil, nil when the screening does not exist.
func SeatMap(db *gorm.DB, screeningId uint) ([]model.SeatMapEntry, error) {
	screening, err := repository.NewScreening(db).GetWithSeats(screeningId)
	if err != nil || screening == nil {
		return nil, err
	}
	return model.NewSeatMap(screening.ScreeningSeats), nil
}

// PublishSeatMap pushes the current seat map of a screening to its Redis
// channel. A nil client disables publishing.
func PublishSeatMap(ctx context.Context, rdb *redis.Client, db *gorm.DB, screeningId uint) error {
	if rdb == nil {
		return nil
	}
	seats, err := SeatMap(db, screeningId)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(seats)
	if err != nil {
		return err
	}
	return rdb.Publish(ctx, SeatChannel(screeningId), payload).Err()
}
