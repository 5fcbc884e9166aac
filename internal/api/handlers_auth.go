package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Authenticate(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(result)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	person := currentPerson(c)
	if person == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(person)
}
