package services

import (
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/internal/utils"
)

type ExpenseService struct {
	ExpenseRepo repositories.ExpenseRepository
	RequestID   string
}

type CreateExpenseInput struct {
	Category    domain.ExpenseCategory
	Amount      float64
	Description string
	ExpenseDate domain.Date
}

func (s ExpenseService) Create(in CreateExpenseInput) (models.Expense, error) {
	if in.Amount < 0 {
		return models.Expense{}, domain.ValidationError{Field: "amount", Msg: "must not be negative"}
	}
	expense := models.NewExpense(in.Category, in.Amount, in.Description, in.ExpenseDate)
	if err := s.ExpenseRepo.Insert(expense); err != nil {
		return models.Expense{}, err
	}
	utils.LogEvent(s.RequestID, "expense", "create", "expense_id="+expense.ID)
	return expense, nil
}

func (s ExpenseService) Get(id string) (models.Expense, error) {
	return s.ExpenseRepo.GetByID(id)
}

func (s ExpenseService) List() ([]models.Expense, error) {
	return s.ExpenseRepo.List()
}

func (s ExpenseService) Update(id string, patch models.ExpensePatch) (models.Expense, error) {
	if _, err := s.ExpenseRepo.GetByID(id); err != nil {
		return models.Expense{}, err
	}
	if err := s.ExpenseRepo.Update(id, patch); err != nil {
		return models.Expense{}, err
	}
	return s.ExpenseRepo.GetByID(id)
}

func (s ExpenseService) Delete(id string) error {
	if _, err := s.ExpenseRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.ExpenseRepo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "expense", "delete", "expense_id="+id)
	return nil
}
