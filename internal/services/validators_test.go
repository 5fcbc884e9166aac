package services

import (
	"testing"
	"time"

	"expenses/internal/models"
)

func validExpense() models.Expense {
	return models.Expense{
		Category: models.CategoryFood,
		Price:    10.0,
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateExpenseFieldsAcceptsCompleteExpense(t *testing.T) {
	if !ValidateExpenseFields(validExpense()) {
		t.Fatal("expected complete expense to validate")
	}
}

func TestValidateExpenseFieldsRejectsMissingFields(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*models.Expense)
	}{
		{"missing category", func(expense *models.Expense) { expense.Category = "" }},
		{"zero price", func(expense *models.Expense) { expense.Price = 0 }},
		{"negative price", func(expense *models.Expense) { expense.Price = -5 }},
		{"missing date", func(expense *models.Expense) { expense.Date = time.Time{} }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			expense := validExpense()
			testCase.mutate(&expense)
			if ValidateExpenseFields(expense) {
				t.Fatalf("expected expense with %s to be rejected", testCase.name)
			}
		})
	}
}

func TestValidatePersonFieldsAcceptsCompleteInput(t *testing.T) {
	input := PersonInput{Email: "a@b.com", Name: "A", Role: models.RoleUser, Password: "pw"}
	if !ValidatePersonFields(input) {
		t.Fatal("expected complete input to validate")
	}
}

func TestValidatePersonFieldsRejectsMissingFields(t *testing.T) {
	testCases := []struct {
		name  string
		input PersonInput
	}{
		{"missing email", PersonInput{Name: "A", Role: models.RoleUser, Password: "pw"}},
		{"missing name", PersonInput{Email: "a@b.com", Role: models.RoleUser, Password: "pw"}},
		{"missing role", PersonInput{Email: "a@b.com", Name: "A", Password: "pw"}},
		{"missing password", PersonInput{Email: "a@b.com", Name: "A", Role: models.RoleUser}},
		{"blank email", PersonInput{Email: "   ", Name: "A", Role: models.RoleUser, Password: "pw"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if ValidatePersonFields(testCase.input) {
				t.Fatalf("expected input with %s to be rejected", testCase.name)
			}
		})
	}
}
