package router

import (
	"cinema_api/database"
	"cinema_api/handler"
	"cinema_api/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	movie := app.Group("/movies", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Post("/", validate.CreateMovie(), handler.CreateMovie)
	movie.Get("/:id", validate.GetById("id"), handler.GetMovieById)
	movie.Put("/:id", validate.GetById("id"), validate.EditMovie(), handler.EditMovie)
	movie.Delete("/:id", validate.GetById("id"), handler.DeleteMovie)
	movie.Post("/:id/screenings", validate.GetById("id"), validate.CreateScreening(), handler.CreateScreeningByMovieId)
	movie.Get("/:id/screenings", validate.GetById("id"), handler.GetScreeningsByMovieId)

	customer := app.Group("/customers", logger.New())
	customer.Get("/", handler.GetCustomers)
	customer.Post("/", validate.CreateCustomer(), handler.CreateCustomer)
	customer.Get("/:id", validate.GetById("id"), handler.GetCustomerById)
	customer.Put("/:id", validate.GetById("id"), validate.EditCustomer(), handler.EditCustomer)
	customer.Delete("/:id", validate.GetById("id"), handler.DeleteCustomer)
	customer.Post("/:customerId/screenings/:screeningId",
		validate.GetById("customerId"), validate.GetById("screeningId"), validate.CreateTicket(), handler.CreateTicket)
	customer.Get("/:customerId/screenings/:screeningId",
		validate.GetById("customerId"), validate.GetById("screeningId"), handler.GetTickets)

	ticket := app.Group("/tickets", logger.New())
	ticket.Get("/:id/qr", validate.GetById("id"), handler.GetTicketQRCode)
	ticket.Delete("/:id", validate.GetById("id"), handler.CancelTicket)

	auditorium := app.Group("/auditoriums", logger.New())
	auditorium.Get("/", handler.GetAuditoriums)
	auditorium.Post("/", validate.CreateAuditorium(), handler.CreateAuditorium)

	screening := app.Group("/screenings", logger.New())
	screening.Get("/:id/seats", validate.GetById("id"), handler.GetScreeningSeats)

	if database.Redis != nil {
		ws := app.Group("/ws", handler.WebsocketUpgrade)
		ws.Get("/screenings/:id", websocket.New(handler.SeatWebsocket))
	}
}
