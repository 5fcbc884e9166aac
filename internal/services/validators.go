package services

import (
	"strings"

	"expenses/internal/models"
)

// PersonInput carries the onboarding fields for a new person. The
// plaintext password only ever lives here; the model stores the hash.
type PersonInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// ValidateExpenseFields reports whether the expense can be persisted:
// category set, price strictly positive, date set. A zero price is as
// invalid as a negative one.
func ValidateExpenseFields(expense models.Expense) bool {
	return expense.Category != "" && expense.Price > 0 && !expense.Date.IsZero()
}

// ValidatePersonFields reports whether every mandatory onboarding field
// is present.
func ValidatePersonFields(input PersonInput) bool {
	return strings.TrimSpace(input.Email) != "" &&
		strings.TrimSpace(input.Role) != "" &&
		strings.TrimSpace(input.Name) != "" &&
		input.Password != ""
}
