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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func emailTaken(db *gorm.DB, email string, exceptId uint) (bool, error) {
	var count int64
	err := db.Model(&model.Customer{}).Where("email = ? AND id <> ?", email, exceptId).Count(&count).Error
	return count > 0, err
}

func GetCustomers(c *fiber.Ctx) error {
	customers, err := repository.New[model.Customer](database.DB).GetAll()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewCustomerOutputs(customers))
}

func GetCustomerById(c *fiber.Ctx) error {
	id := localsId(c, "id")
	customer, err := repository.New[model.Customer](database.DB).GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CUSTOMER_NOT_FOUND, id))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewCustomerOutput(*customer))
}

func CreateCustomer(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCustomer").(model.CustomerInput)
	if !ok {
		return localsError(c)
	}
	db := database.DB
	taken, err := emailTaken(db, input.Email, 0)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if taken {
		return utils.MessageResponse(c, fiber.StatusConflict, constants.CUSTOMER_EMAIL_EXISTED)
	}

	newCustomer := new(model.Customer)
	copier.Copy(newCustomer, &input)
	if _, err := repository.New[model.Customer](db).Insert(newCustomer); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	c.Location(fmt.Sprintf("/customers/%d", newCustomer.ID))
	return utils.SuccessResponse(c, fiber.StatusCreated, model.NewCustomerOutput(*newCustomer))
}

func EditCustomer(c *fiber.Ctx) error {
	id := localsId(c, "id")
	input, ok := c.Locals("inputCustomer").(model.CustomerInput)
	if !ok {
		return localsError(c)
	}
	db := database.DB
	customers := repository.New[model.Customer](db)
	customer, err := customers.GetById(id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CUSTOMER_NOT_FOUND, id))
	}
	taken, err := emailTaken(db, input.Email, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if taken {
		return utils.MessageResponse(c, fiber.StatusConflict, constants.CUSTOMER_EMAIL_EXISTED)
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	if _, err := customers.Update(customer); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewCustomerOutput(*customer))
}

func DeleteCustomer(c *fiber.Ctx) error {
	id := localsId(c, "id")
	var deleted *model.Customer
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var tickets int64
		if err := tx.Model(&model.Ticket{}).Where("customer_id = ?", id).Count(&tickets).Error; err != nil {
			return err
		}
		if tickets > 0 {
			return helper.ErrHasTickets
		}
		var err error
		deleted, err = repository.New[model.Customer](tx).DeleteById(id)
		return err
	})
	switch {
	case errors.Is(err, helper.ErrHasTickets):
		return utils.MessageResponse(c, fiber.StatusConflict, fmt.Sprintf(constants.CUSTOMER_HAS_TICKETS, id))
	case err != nil:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	case deleted == nil:
		return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf(constants.CUSTOMER_NOT_FOUND, id))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewCustomerOutput(*deleted))
}
