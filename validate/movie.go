package validate

import (
	"cinema_api/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return Body[model.MoviePostInput]("inputCreateMovie")
}

func EditMovie() fiber.Handler {
	return Body[model.MoviePutInput]("inputEditMovie")
}

func CreateScreening() fiber.Handler {
	return Body[model.ScreeningInput]("inputCreateScreening")
}
