package validate

import (
	"cinema_api/model"

	"github.com/gofiber/fiber/v2"
)

// CreateCustomer and EditCustomer share the same input; PUT overwrites every
// field.
func CreateCustomer() fiber.Handler {
	return Body[model.CustomerInput]("inputCustomer")
}

func EditCustomer() fiber.Handler {
	return Body[model.CustomerInput]("inputCustomer")
}
