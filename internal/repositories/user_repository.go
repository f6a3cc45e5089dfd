package repositories

import (
	"database/sql"
	"errors"

	intconfig "hotel-backend/internal/config"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepository) Insert(u models.User) error {
	_, err := r.db().Exec(`
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (?,?,?,?,?,?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt,
	)
	return err
}

func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, password_hash, role, created_at
		FROM users WHERE email=? LIMIT 1`, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) EmailExists(email string) (bool, error) {
	var id string
	err := r.db().QueryRow(`SELECT id FROM users WHERE email=? LIMIT 1`, email).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
