package model

import "time"

type DTO struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Payload is the envelope every successful response is wrapped in.
type Payload[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func NewPayload[T any](data T) Payload[T] {
	return Payload[T]{Status: "success", Data: data}
}
