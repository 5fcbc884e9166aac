package api

import (
	"time"

	"expenses/internal/models"

	"github.com/gofiber/fiber/v2"
)

// expenseDateLayout is the wire format for expense dates; values are
// stored as UTC midnight.
const expenseDateLayout = "2006-01-02"

func (handler *Handler) AddExpense(c *fiber.Ctx) error {
	var input addExpenseInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	expense, err := expenseFromPayload(input.Expense)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := handler.expenses.AttachOwner(&expense, input.PersonID); err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.expenses.Add(&expense); err != nil {
		return respondServiceError(c, err)
	}
	return apiMessage(c, "Expense added successfully.")
}

func (handler *Handler) DeleteExpense(c *fiber.Ctx) error {
	expenseID, err := c.ParamsInt("id")
	if err != nil || expenseID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid expense id")
	}

	if err := handler.expenses.DeleteByID(uint(expenseID)); err != nil {
		return respondServiceError(c, err)
	}
	return apiMessage(c, "Expense deleted successfully.")
}

func (handler *Handler) GetAllExpenses(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("personId")
	if err != nil || personID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid person id")
	}

	expenses, err := handler.expenses.GetAll(uint(personID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(expenses)
}

func (handler *Handler) GetAllCategories(c *fiber.Ctx) error {
	categories, err := handler.expenses.Categories()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

func (handler *Handler) GetCurrentMonthTotal(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("personId")
	if err != nil || personID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid person id")
	}

	total, err := handler.expenses.CurrentMonthTotal(uint(personID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"total": total})
}

func (handler *Handler) GetExpensesByCategory(c *fiber.Ctx) error {
	personID, err := c.ParamsInt("personId")
	if err != nil || personID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid person id")
	}

	expenses, err := handler.expenses.ByCategoryAndPerson(c.Params("category"), uint(personID))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(expenses)
}

func expenseFromPayload(payload expensePayload) (models.Expense, error) {
	expense := models.Expense{
		Price:       payload.Price,
		Description: payload.Description,
	}

	if payload.Category != "" {
		category, err := models.ParseCategory(payload.Category)
		if err != nil {
			return models.Expense{}, err
		}
		expense.Category = category
	}

	if payload.Date != "" {
		date, err := time.ParseInLocation(expenseDateLayout, payload.Date, time.UTC)
		if err != nil {
			return models.Expense{}, err
		}
		expense.Date = date
	}

	return expense, nil
}
