package helper

import (
	"errors"
	"fmt"
)

var (
	ErrAuditoriumNotFound = errors.New("auditorium not found")
	ErrAuditoriumTooSmall = errors.New("auditorium has fewer seats than requested")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrScreeningNotFound  = errors.New("screening not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrNotEnoughSeats     = errors.New("not enough free seats")
	ErrHasTickets         = errors.New("record still has tickets")
	ErrTicketNotActive    = errors.New("ticket is not booked")
)

// ScreenError reports which auditorium a screening input failed on.
type ScreenError struct {
	ScreenNumber uint
	Seats        int
	Err          error
}

func (e *ScreenError) Error() string {
	return fmt.Sprintf("screen %d: %v", e.ScreenNumber, e.Err)
}

func (e *ScreenError) Unwrap() error {
	return e.Err
}

type SeatsError struct {
	ScreeningId uint
	Free        int
}

func (e *SeatsError) Error() string {
	return fmt.Sprintf("screening %d: %d free: %v", e.ScreeningId, e.Free, ErrNotEnoughSeats)
}

func (e *SeatsError) Unwrap() error {
	return ErrNotEnoughSeats
}

type TicketStatusError struct {
	TicketId uint
	Status   string
}

func (e *TicketStatusError) Error() string {
	return fmt.Sprintf("ticket %d is %s: %v", e.TicketId, e.Status, ErrTicketNotActive)
}

func (e *TicketStatusError) Unwrap() error {
	return ErrTicketNotActive
}
