package model

type Customer struct {
	DTO
	Name    string   `gorm:"not null" json:"name"`
	Email   string   `gorm:"unique;not null" json:"email"`
	Phone   string   `json:"phone"`
	Tickets []Ticket `gorm:"foreignKey:CustomerId" json:"-"`
}

type CustomerInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type CustomerOutput struct {
	DTO
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func NewCustomerOutput(c Customer) CustomerOutput {
	return CustomerOutput{DTO: c.DTO, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func NewCustomerOutputs(customers []Customer) []CustomerOutput {
	out := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		out = append(out, NewCustomerOutput(c))
	}
	return out
}
