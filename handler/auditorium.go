package handler

import (
	"cinema_api/constants"
	"cinema_api/database"
	"cinema_api/helper"
	"cinema_api/model"
	"cinema_api/repository"
	"cinema_api/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func GetAuditoriums(c *fiber.Ctx) error {
	auditoriums, err := repository.New[model.Auditorium](database.DB).GetAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	out := make([]model.AuditoriumOutput, 0, len(auditoriums))
	for _, a := range auditoriums {
		out = append(out, model.NewAuditoriumOutput(a))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, out)
}

func CreateAuditorium(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAuditorium").(model.CreateAuditoriumInput)
	if !ok {
		return localsError(c)
	}
	auditorium, err := helper.CreateAuditorium(database.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, model.NewAuditoriumOutput(*auditorium))
}

func GetScreeningSeats(c *fiber.Ctx) error {
	id := localsId(c, "id")
	seats, err := helper.SeatMap(database.DB, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if seats == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.SCREENING_NOT_FOUND, id))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}
