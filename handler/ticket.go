package handler

import (
	"cinema_api/constants"
	"cinema_api/database"
	"cinema_api/helper"
	"cinema_api/model"
	"cinema_api/repository"
	"cinema_api/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func publishSeats(screeningId uint) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := helper.PublishSeatMap(ctx, database.Redis, database.DB, screeningId); err != nil {
		log.Printf("publish seat map for screening %d: %v", screeningId, err)
	}
}

// afterBooking publishes the new seat map and mails the customer. Neither may
// fail the request.
func afterBooking(ticket model.Ticket) {
	publishSeats(ticket.ScreeningId)
	if !utils.MailEnabled() {
		return
	}

	db := database.DB

	customer, err := repository.New[model.Customer](db).GetById(ticket.CustomerId)
	if err != nil || customer == nil {
		return
	}
	screening, err := repository.New[model.Screening](db).GetById(ticket.ScreeningId)
	if err != nil || screening == nil {
		return
	}
	movie, err := repository.New[model.Movie](db).GetById(screening.MovieId)
	if err != nil || movie == nil {
		return
	}
	utils.SendTicketConfirmationEmail(customer.Email, utils.TicketConfirmationData{
		CustomerName: customer.Name,
		TicketCode:   ticket.TicketCode,
		MovieTitle:   movie.Title,
		StartsAt:     screening.StartsAt.Format("2006-01-02 15:04"),
		NumSeats:     ticket.NumSeats,
	})
}

func CreateTicket(c *fiber.Ctx) error {
	customerId := localsId(c, "customerId")
	screeningId := localsId(c, "screeningId")
	input, ok := c.Locals("inputCreateTicket").(model.CreateTicketInput)
	if !ok {
		return localsError(c)
	}

	ticket, err := helper.BookTicket(database.DB, customerId, screeningId, input.NumSeats)
	var seatsErr *helper.SeatsError
	switch {
	case errors.Is(err, helper.ErrCustomerNotFound):
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CUSTOMER_NOT_FOUND, customerId))
	case errors.Is(err, helper.ErrScreeningNotFound):
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.SCREENING_NOT_FOUND, screeningId))
	case errors.As(err, &seatsErr):
		return utils.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf(constants.NOT_ENOUGH_SEATS, seatsErr.ScreeningId, seatsErr.Free))
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	go afterBooking(*ticket)
	return utils.SuccessResponse(c, fiber.StatusCreated, model.NewTicketOutput(*ticket))
}

func GetTickets(c *fiber.Ctx) error {
	customerId := localsId(c, "customerId")
	screeningId := localsId(c, "screeningId")
	db := database.DB

	customer, err := repository.New[model.Customer](db).GetById(customerId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CUSTOMER_NOT_FOUND, customerId))
	}
	screening, err := repository.New[model.Screening](db).GetById(screeningId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if screening == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.SCREENING_NOT_FOUND, screeningId))
	}

	tickets, err := repository.NewJunction[model.Ticket](db).GetWhere("customer_id = ? AND screening_id = ?", customerId, screeningId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	out := make([]model.TicketOutput, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, model.NewTicketOutput(t))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, out)
}

func CancelTicket(c *fiber.Ctx) error {
	id := localsId(c, "id")
	ticket, err := helper.CancelTicket(database.DB, id)
	var statusErr *helper.TicketStatusError
	switch {
	case errors.Is(err, helper.ErrTicketNotFound):
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.TICKET_NOT_FOUND, id))
	case errors.As(err, &statusErr):
		return utils.MessageResponse(c, fiber.StatusConflict, fmt.Sprintf(constants.TICKET_NOT_ACTIVE, statusErr.TicketId, statusErr.Status))
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	go publishSeats(ticket.ScreeningId)
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewTicketOutput(*ticket))
}

func GetTicketQRCode(c *fiber.Ctx) error {
	id := localsId(c, "id")
	ticket, err := repository.New[model.Ticket](database.DB).GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if ticket == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.TICKET_NOT_FOUND, id))
	}
	png, err := utils.GenerateQRCode(ticket.TicketCode, utils.TicketQRSize)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
