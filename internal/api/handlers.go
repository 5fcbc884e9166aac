package api

import (
	"expenses/internal/db"
	"expenses/internal/services"
)

const contextPersonKey = "current_person"

type Handler struct {
	persons  *services.PersonService
	expenses *services.ExpenseService
	auth     *services.AuthService
}

func NewHandler(repositories *db.Repositories, tokens *services.TokenService) *Handler {
	return &Handler{
		persons:  services.NewPersonService(repositories.Persons),
		expenses: services.NewExpenseService(repositories.Expenses, repositories.Persons),
		auth:     services.NewAuthService(repositories.Persons, tokens),
	}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type expensePayload struct {
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type addExpenseInput struct {
	Expense  expensePayload `json:"expense"`
	PersonID uint           `json:"personId"`
}
