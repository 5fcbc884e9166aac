package api

import (
	"errors"

	"expenses/internal/services"

	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiMessage(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// respondServiceError maps the service taxonomy onto HTTP statuses:
// validation 400, auth 401, not-found 404, conflict 409, everything
// else 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrExpenseRequired),
		errors.Is(err, services.ErrMandatoryFieldsMissing),
		errors.Is(err, services.ErrInvalidCategory):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrTokenInvalid):
		return apiError(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrNoPersonFound),
		errors.Is(err, services.ErrNoExpensesFound),
		errors.Is(err, services.ErrNoCategoriesFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
