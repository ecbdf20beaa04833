package utils

import (
	"cinema_api/model"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

// MessageResponse answers with a plain-text body, used for missing
// references and conflicts.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).SendString(message)
}

func SuccessResponse[T any](c *fiber.Ctx, status int, data T) error {
	return c.Status(status).JSON(model.NewPayload(data))
}

func ParseId(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}
