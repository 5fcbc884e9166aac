package services

import (
	"time"

	"expenses/internal/models"
)

type ExpenseRepository interface {
	Create(expense *models.Expense) error
	DeleteByID(expenseID uint) (int64, error)
	ListByPerson(personID uint) ([]models.Expense, error)
	ListByPersonAndDateRange(personID uint, from time.Time, toExclusive time.Time) ([]models.Expense, error)
	ListByCategoryAndPerson(category models.Category, personID uint) ([]models.Expense, error)
}

type ExpenseService struct {
	expenses ExpenseRepository
	persons  PersonRepository
	now      func() time.Time
}

func NewExpenseService(expenses ExpenseRepository, persons PersonRepository) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		persons:  persons,
		now:      time.Now,
	}
}

// AttachOwner binds the expense to an existing person before
// persistence. The owner is set exactly once, never left unset.
func (service *ExpenseService) AttachOwner(expense *models.Expense, personID uint) error {
	if expense == nil {
		return ErrExpenseRequired
	}
	exists, err := service.persons.ExistsByID(personID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoPersonFound
	}
	expense.PersonID = personID
	return nil
}

func (service *ExpenseService) Add(expense *models.Expense) error {
	if expense == nil {
		return ErrExpenseRequired
	}
	if !ValidateExpenseFields(*expense) {
		return ErrMandatoryFieldsMissing
	}
	return service.expenses.Create(expense)
}

func (service *ExpenseService) DeleteByID(expenseID uint) error {
	removed, err := service.expenses.DeleteByID(expenseID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrNoExpensesFound
	}
	return nil
}

func (service *ExpenseService) GetAll(personID uint) ([]models.Expense, error) {
	if err := service.requirePerson(personID); err != nil {
		return nil, err
	}
	expenses, err := service.expenses.ListByPerson(personID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, ErrNoExpensesFound
	}
	return expenses, nil
}

// Categories returns every category name in declaration order.
func (service *ExpenseService) Categories() ([]string, error) {
	categories := models.Categories()
	if len(categories) == 0 {
		return nil, ErrNoCategoriesFound
	}
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, string(category))
	}
	return names, nil
}

// CurrentMonthTotal sums the prices of the person's expenses dated
// within the current calendar month, first through last day inclusive.
func (service *ExpenseService) CurrentMonthTotal(personID uint) (float64, error) {
	now := service.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	expenses, err := service.expenses.ListByPersonAndDateRange(personID, monthStart, nextMonthStart)
	if err != nil {
		return 0, err
	}
	if len(expenses) == 0 {
		return 0, ErrNoExpensesFound
	}

	var total float64
	for _, expense := range expenses {
		total += expense.Price
	}
	return total, nil
}

func (service *ExpenseService) ByCategoryAndPerson(rawCategory string, personID uint) ([]models.Expense, error) {
	if err := service.requirePerson(personID); err != nil {
		return nil, err
	}
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return nil, ErrInvalidCategory
	}
	expenses, err := service.expenses.ListByCategoryAndPerson(category, personID)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, ErrNoExpensesFound
	}
	return expenses, nil
}

func (service *ExpenseService) requirePerson(personID uint) error {
	exists, err := service.persons.ExistsByID(personID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNoPersonFound
	}
	return nil
}
