package model

type Movie struct {
	DTO
	Title       string      `gorm:"not null;index" json:"title"`
	Rating      string      `gorm:"size:10" json:"rating"`
	Description string      `gorm:"type:text" json:"description"`
	RuntimeMins int         `gorm:"not null" json:"runtimeMins"`
	Slug        string      `gorm:"uniqueIndex" json:"slug"`
	Screenings  []Screening `gorm:"foreignKey:MovieId;constraint:OnDelete:CASCADE" json:"-"`
}

type MoviePostInput struct {
	Title       string           `json:"title" validate:"required"`
	Rating      string           `json:"rating" validate:"required,max=10"`
	Description string           `json:"description"`
	RuntimeMins int              `json:"runtimeMins" validate:"required,gt=0"`
	Screenings  []ScreeningInput `json:"screenings" validate:"omitempty,dive" copier:"-"`
}

// MoviePutInput overwrites every mutable field of a movie.
type MoviePutInput struct {
	Title       string `json:"title" validate:"required"`
	Rating      string `json:"rating" validate:"required,max=10"`
	Description string `json:"description"`
	RuntimeMins int    `json:"runtimeMins" validate:"required,gt=0"`
}

type MovieOutput struct {
	DTO
	Title       string `json:"title"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	RuntimeMins int    `json:"runtimeMins"`
	Slug        string `json:"slug"`
}

type MovieWithScreeningsOutput struct {
	MovieOutput
	Screenings []ScreeningOutput `json:"screenings"`
}

func NewMovieOutput(m Movie) MovieOutput {
	return MovieOutput{
		DTO:         m.DTO,
		Title:       m.Title,
		Rating:      m.Rating,
		Description: m.Description,
		RuntimeMins: m.RuntimeMins,
		Slug:        m.Slug,
	}
}

func NewMovieOutputs(movies []Movie) []MovieOutput {
	out := make([]MovieOutput, 0, len(movies))
	for _, m := range movies {
		out = append(out, NewMovieOutput(m))
	}
	return out
}
