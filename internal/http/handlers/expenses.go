package handlers

import (
	"net/http"

	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
	"hotel-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type createExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date"`
}

// POST /api/expenses
func (h *Handlers) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	category, err := domain.ParseExpenseCategory(req.Category)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	expenseDate, err := domain.ParseDate(req.ExpenseDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	expense, err := h.expenses(c).Create(services.CreateExpenseInput{
		Category:    category,
		Amount:      req.Amount,
		Description: req.Description,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// GET /api/expenses
func (h *Handlers) GetExpenses(c *gin.Context) {
	expenses, err := h.expenses(c).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// GET /api/expenses/:id
func (h *Handlers) GetExpense(c *gin.Context) {
	expense, err := h.expenses(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

type updateExpenseRequest struct {
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	ExpenseDate *string  `json:"expense_date"`
}

// PUT /api/expenses/:id
func (h *Handlers) UpdateExpense(c *gin.Context) {
	var req updateExpenseRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var patch models.ExpensePatch
	if req.Category != nil {
		category, err := domain.ParseExpenseCategory(*req.Category)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		patch.Category = &category
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			RespondDomainError(c, domain.ValidationError{Field: "amount", Msg: "must not be negative"})
			return
		}
		patch.Amount = req.Amount
	}
	patch.Description = req.Description
	if req.ExpenseDate != nil {
		expenseDate, err := domain.ParseDate(*req.ExpenseDate)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		patch.ExpenseDate = &expenseDate
	}

	expense, err := h.expenses(c).Update(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// DELETE /api/expenses/:id
func (h *Handlers) DeleteExpense(c *gin.Context) {
	if err := h.expenses(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
