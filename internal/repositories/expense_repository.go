package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "hotel-backend/internal/config"
	intdb "hotel-backend/internal/db"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type ExpenseRepository struct {
	DB *sql.DB
}

func (r ExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const expenseColumns = `id, category, amount, COALESCE(description,''), expense_date, created_at`

func (r ExpenseRepository) Insert(e models.Expense) error {
	_, err := r.db().Exec(`
		INSERT INTO expenses (id, category, amount, description, expense_date, created_at)
		VALUES (?,?,?,?,?,?)`,
		e.ID, string(e.Category), e.Amount, intdb.NullIfEmpty(e.Description), e.ExpenseDate.String(), e.CreatedAt,
	)
	return err
}

func (r ExpenseRepository) GetByID(id string) (models.Expense, error) {
	row := r.db().QueryRow(`SELECT `+expenseColumns+` FROM expenses WHERE id=? LIMIT 1`, id)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, domain.NotFoundError{Resource: "expense"}
	}
	return expense, err
}

func (r ExpenseRepository) List() ([]models.Expense, error) {
	rows, err := r.db().Query(`SELECT ` + expenseColumns + ` FROM expenses ORDER BY expense_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (r ExpenseRepository) ListOn(day domain.Date) ([]models.Expense, error) {
	rows, err := r.db().Query(`
		SELECT `+expenseColumns+` FROM expenses WHERE expense_date=?`, day.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectExpenses(rows)
}

func (r ExpenseRepository) Update(id string, patch models.ExpensePatch) error {
	sets := []string{}
	args := []any{}

	if patch.Category != nil {
		sets = append(sets, "category=?")
		args = append(args, string(*patch.Category))
	}
	if patch.Amount != nil {
		sets = append(sets, "amount=?")
		args = append(args, *patch.Amount)
	}
	if patch.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *patch.Description)
	}
	if patch.ExpenseDate != nil {
		sets = append(sets, "expense_date=?")
		args = append(args, patch.ExpenseDate.String())
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().Exec(`UPDATE expenses SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r ExpenseRepository) Delete(id string) error {
	_, err := r.db().Exec(`DELETE FROM expenses WHERE id=?`, id)
	return err
}

func scanExpense(row rowScanner) (models.Expense, error) {
	var (
		e        models.Expense
		category string
		day      string
	)
	if err := row.Scan(
		&e.ID,
		&category,
		&e.Amount,
		&e.Description,
		&day,
		&e.CreatedAt,
	); err != nil {
		return models.Expense{}, err
	}
	e.Category = domain.ExpenseCategory(category)
	var err error
	if e.ExpenseDate, err = domain.ParseDate(day); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

func collectExpenses(rows *sql.Rows) ([]models.Expense, error) {
	out := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
