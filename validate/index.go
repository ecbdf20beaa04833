package validate

import (
	"cinema_api/constants"
	"cinema_api/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// GetById parses the numeric route param key and stores it under the same
// key in Locals.
func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.ParseId(c, key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		c.Locals(key, id)
		return c.Next()
	}
}

// Body parses the JSON body into T, validates it and stores it under
// localsKey.
func Body[T any](localsKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input T
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		c.Locals(localsKey, input)
		return c.Next()
	}
}
