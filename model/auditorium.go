package model

// Auditorium is identified by its screen number.
type Auditorium struct {
	DTO
	Capacity int    `gorm:"not null" json:"capacity"`
	Seats    []Seat `gorm:"foreignKey:AuditoriumId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

type Seat struct {
	DTO
	AuditoriumId uint   `gorm:"not null;index" json:"auditoriumId"`
	Row          string `gorm:"size:4;not null" json:"row"`
	Number       int    `gorm:"not null" json:"number"`
}

type CreateAuditoriumInput struct {
	Capacity    int `json:"capacity" validate:"required,gt=0,lte=1000"`
	SeatsPerRow int `json:"seatsPerRow" validate:"required,gt=0,lte=50"`
}

type AuditoriumOutput struct {
	DTO
	ScreenNumber uint `json:"screenNumber"`
	Capacity     int  `json:"capacity"`
}

func NewAuditoriumOutput(a Auditorium) AuditoriumOutput {
	return AuditoriumOutput{DTO: a.DTO, ScreenNumber: a.ID, Capacity: a.Capacity}
}
