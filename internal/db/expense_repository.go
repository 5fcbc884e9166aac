package db

import (
	"time"

	"expenses/internal/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct {
	database *gorm.DB
}

func NewExpenseRepository(database *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{database: database}
}

func (repo *ExpenseRepository) Create(expense *models.Expense) error {
	return repo.database.Create(expense).Error
}

// DeleteByID reports how many rows were removed so callers can
// distinguish a missing id without a separate lookup.
func (repo *ExpenseRepository) DeleteByID(expenseID uint) (int64, error) {
	result := repo.database.Delete(&models.Expense{}, expenseID)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *ExpenseRepository) ListByPerson(personID uint) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.Where("person_id = ?", personID).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListByPersonAndDateRange returns expenses dated within [from, toExclusive).
func (repo *ExpenseRepository) ListByPersonAndDateRange(personID uint, from time.Time, toExclusive time.Time) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.
		Where("person_id = ? AND date >= ? AND date < ?", personID, from, toExclusive).
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *ExpenseRepository) ListByCategoryAndPerson(category models.Category, personID uint) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)
	if err := repo.database.
		Where("category = ? AND person_id = ?", category, personID).
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
