package validate

import (
	"cinema_api/model"

	"github.com/gofiber/fiber/v2"
)

func CreateAuditorium() fiber.Handler {
	return Body[model.CreateAuditoriumInput]("inputCreateAuditorium")
}
