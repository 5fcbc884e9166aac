package db

import "gorm.io/gorm"

type Repositories struct {
	Persons  *PersonRepository
	Expenses *ExpenseRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Persons:  NewPersonRepository(database),
		Expenses: NewExpenseRepository(database),
	}
}
