package model

import "time"

type Screening struct {
	DTO
	MovieId        uint            `gorm:"not null;index" json:"movieId"`
	StartsAt       time.Time       `gorm:"not null" json:"startsAt"`
	Status         string          `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`
	ScreeningSeats []ScreeningSeat `gorm:"foreignKey:ScreeningId;constraint:OnDelete:CASCADE" json:"-"`
	Tickets        []Ticket        `gorm:"foreignKey:ScreeningId" json:"-"`
}

// ScreeningSeat joins a screening to one physical seat of an auditorium.
type ScreeningSeat struct {
	DTO
	ScreeningId uint  `gorm:"not null;index" json:"screeningId"`
	SeatId      uint  `gorm:"not null;index" json:"seatId"`
	Reserved    bool  `gorm:"not null;default:false" json:"reserved"`
	TicketId    *uint `gorm:"index" json:"ticketId"`
	Seat        Seat  `gorm:"foreignKey:SeatId" json:"-"`
}

type ScreeningInput struct {
	ScreenNumber uint      `json:"screenNumber" validate:"required,gt=0"`
	Capacity     int       `json:"capacity" validate:"required,gt=0"`
	StartsAt     time.Time `json:"startsAt" validate:"required"`
}

type ScreeningOutput struct {
	DTO
	ScreenNumber uint      `json:"screenNumber"`
	Capacity     int       `json:"capacity"`
	StartsAt     time.Time `json:"startsAt"`
	Status       string    `json:"status"`
}

type SeatMapEntry struct {
	ScreeningSeatId uint   `json:"screeningSeatId"`
	SeatId          uint   `json:"seatId"`
	Row             string `json:"row"`
	Number          int    `json:"number"`
	Reserved        bool   `json:"reserved"`
}

func NewScreeningOutput(s Screening, screenNumber uint, capacity int) ScreeningOutput {
	return ScreeningOutput{
		DTO:          s.DTO,
		ScreenNumber: screenNumber,
		Capacity:     capacity,
		StartsAt:     s.StartsAt,
		Status:       s.Status,
	}
}

// ScreenNumberAndCapacity derives the auditorium and capacity of a screening
// from its preloaded seat rows.
func (s Screening) ScreenNumberAndCapacity() (uint, int) {
	if len(s.ScreeningSeats) == 0 {
		return 0, 0
	}
	return s.ScreeningSeats[0].Seat.AuditoriumId, len(s.ScreeningSeats)
}

func NewSeatMap(seats []ScreeningSeat) []SeatMapEntry {
	out := make([]SeatMapEntry, 0, len(seats))
	for _, s := range seats {
		out = append(out, SeatMapEntry{
			ScreeningSeatId: s.ID,
			SeatId:          s.SeatId,
			Row:             s.Seat.Row,
			Number:          s.Seat.Number,
			Reserved:        s.Reserved,
		})
	}
	return out
}
