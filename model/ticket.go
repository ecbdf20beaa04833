package model

type Ticket struct {
	DTO
	TicketCode  string `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	NumSeats    int    `gorm:"not null" json:"numSeats"`
	Status      string `gorm:"size:20;not null;default:'BOOKED'" json:"status"`
	CustomerId  uint   `gorm:"not null;index" json:"customerId"`
	ScreeningId uint   `gorm:"not null;index" json:"screeningId"`
}

type CreateTicketInput struct {
	NumSeats int `json:"numSeats" validate:"required,gt=0,lte=20"`
}

type TicketOutput struct {
	DTO
	TicketCode  string `json:"ticketCode"`
	NumSeats    int    `json:"numSeats"`
	Status      string `json:"status"`
	CustomerId  uint   `json:"customerId"`
	ScreeningId uint   `json:"screeningId"`
}

func NewTicketOutput(t Ticket) TicketOutput {
	return TicketOutput{
		DTO:         t.DTO,
		TicketCode:  t.TicketCode,
		NumSeats:    t.NumSeats,
		Status:      t.Status,
		CustomerId:  t.CustomerId,
		ScreeningId: t.ScreeningId,
	}
}
