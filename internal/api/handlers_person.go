package api

import (
	"expenses/internal/models"
	"expenses/internal/services"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddPerson(c *fiber.Ctx) error {
	var input services.PersonInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Role != "" && input.Role != models.RoleUser && input.Role != models.RoleAdmin {
		return apiError(c, fiber.StatusBadRequest, "invalid role")
	}

	if _, err := handler.persons.Add(input); err != nil {
		return respondServiceError(c, err)
	}
	return apiMessage(c, "Person added successfully.")
}

func (handler *Handler) DeletePerson(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("id")
	if err != nil || personID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid person id")
	}

	if err := handler.persons.DeleteByID(uint(personID)); err != nil {
		return respondServiceError(c, err)
	}
	return apiMessage(c, "Person deleted successfully.")
}

func (handler *Handler) GetAllPersons(c *fiber.Ctx) error {
	persons, err := handler.persons.GetAll()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(persons)
}
