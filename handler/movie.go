package handler

import (
	"cinema_api/constants"
	"cinema_api/database"
	"cinema_api/helper"
	"cinema_api/model"
	"cinema_api/repository"
	"cinema_api/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMovies(c *fiber.Ctx) error {
	movies, err := repository.New[model.Movie](database.DB).GetAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMovieOutputs(movies))
}

func GetMovieById(c *fiber.Ctx) error {
	id := localsId(c, "id")
	movie, err := repository.New[model.Movie](database.DB).GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.MOVIE_NOT_FOUND, id))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMovieOutput(*movie))
}

func CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMovie").(model.MoviePostInput)
	if !ok {
		return localsError(c)
	}
	result, err := helper.CreateMovieWithScreenings(database.DB, input)
	if err != nil {
		if ok, resp := screenErrorResponse(c, err); ok {
			return resp
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	c.Location(fmt.Sprintf("/movies/%d", result.ID))
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func EditMovie(c *fiber.Ctx) error {
	id := localsId(c, "id")
	input, ok := c.Locals("inputEditMovie").(model.MoviePutInput)
	if !ok {
		return localsError(c)
	}
	movie, err := helper.UpdateMovie(database.DB, id, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if movie == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.MOVIE_NOT_FOUND, id))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMovieOutput(*movie))
}

func DeleteMovie(c *fiber.Ctx) error {
	id := localsId(c, "id")
	movie, err := helper.DeleteMovie(database.DB, id)
	switch {
	case errors.Is(err, helper.ErrMovieNotFound):
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.MOVIE_NOT_FOUND, id))
	case errors.Is(err, helper.ErrHasTickets):
		return utils.MessageResponse(c, fiber.StatusConflict, fmt.Sprintf(constants.MOVIE_HAS_TICKETS, id))
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewMovieOutput(*movie))
}

func CreateScreeningByMovieId(c *fiber.Ctx) error {
	id := localsId(c, "id")
	input, ok := c.Locals("inputCreateScreening").(model.ScreeningInput)
	if !ok {
		return localsError(c)
	}
	movie, err := repository.New[model.Movie](database.DB).GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(constants.MOVIE_NOT_FOUND_SHORT, id))
	}

	var result model.ScreeningOutput
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = helper.CreateScreening(tx, movie.ID, input)
		return err
	})
	if err != nil {
		if ok, resp := screenErrorResponse(c, err); ok {
			return resp
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	c.Location(fmt.Sprintf("/movies/%d/screenings", movie.ID))
	return utils.SuccessResponse(c, fiber.StatusCreated, result)
}

func GetScreeningsByMovieId(c *fiber.Ctx) error {
	id := localsId(c, "id")
	movie, err := repository.New[model.Movie](database.DB).GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if movie == nil {
		return utils.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(constants.MOVIE_NOT_FOUND_SHORT, id))
	}
	screenings, err := repository.NewScreening(database.DB).GetAllByMovieId(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, helper.ScreeningOutputs(screenings))
}
