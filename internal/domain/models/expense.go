package models

import (
	"time"

	"hotel-backend/internal/domain"

	"github.com/google/uuid"
)

type Expense struct {
	ID          string                 `json:"id"`
	Category    domain.ExpenseCategory `json:"category"`
	Amount      float64                `json:"amount"`
	Description string                 `json:"description"`
	ExpenseDate domain.Date            `json:"expense_date"`
	CreatedAt   time.Time              `json:"created_at"`
}

// ExpensePatch supports partial updates via field presence.
type ExpensePatch struct {
	Category    *domain.ExpenseCategory
	Amount      *float64
	Description *string
	ExpenseDate *domain.Date
}

func NewExpense(category domain.ExpenseCategory, amount float64, description string, expenseDate domain.Date) Expense {
	return Expense{
		ID:          uuid.NewString(),
		Category:    category,
		Amount:      amount,
		Description: description,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now().UTC(),
	}
}
