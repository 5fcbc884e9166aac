package services

import "errors"

var (
	ErrExpenseRequired        = errors.New("expense is required")
	ErrMandatoryFieldsMissing = errors.New("mandatory fields missing")
	ErrNoPersonFound          = errors.New("no person found")
	ErrEmailTaken             = errors.New("email already in use")
	ErrNoExpensesFound        = errors.New("no expenses found")
	ErrNoCategoriesFound      = errors.New("no categories found")
	ErrInvalidCategory        = errors.New("invalid category")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenInvalid           = errors.New("token invalid")
)
