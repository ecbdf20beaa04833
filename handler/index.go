package handler

import (
	"cinema_api/constants"
	"cinema_api/helper"
	"cinema_api/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func localsId(c *fiber.Ctx, key string) uint {
	id, _ := c.Locals(key).(uint)
	return id
}

func localsError(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals failed"))
}

// screenErrorResponse answers for *helper.ScreenError; ok is false for any
// other error.
func screenErrorResponse(c *fiber.Ctx, err error) (bool, error) {
	var screenErr *helper.ScreenError
	if !errors.As(err, &screenErr) {
		return false, nil
	}
	if errors.Is(err, helper.ErrAuditoriumTooSmall) {
		return true, utils.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(constants.AUDITORIUM_TOO_SMALL, screenErr.ScreenNumber, screenErr.Seats))
	}
	return true, utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.SCREEN_NOT_FOUND, screenErr.ScreenNumber))
}
