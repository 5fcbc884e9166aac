package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/authenticate", handler.Authenticate)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	person := api.Group("/person")
	person.Post("/add", handler.AddPerson)
	person.Delete("/delete/:id", handler.AuthRequired, handler.DeletePerson)
	person.Get("/getAll", handler.AuthRequired, handler.GetAllPersons)

	expense := api.Group("/expense")
	expense.Get("/getAllCategories", handler.GetAllCategories)
	expense.Post("/add", handler.AuthRequired, handler.AddExpense)
	expense.Delete("/delete/:id", handler.AuthRequired, handler.DeleteExpense)
	expense.Get("/getAll/:personId", handler.AuthRequired, handler.GetAllExpenses)
	expense.Get("/currentMonthTotal/:personId", handler.AuthRequired, handler.GetCurrentMonthTotal)
	expense.Get("/byCategory/:category/:personId", handler.AuthRequired, handler.GetExpensesByCategory)
}
