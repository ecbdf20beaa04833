package validate

import (
	"cinema_api/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTicket() fiber.Handler {
	return Body[model.CreateTicketInput]("inputCreateTicket")
}
