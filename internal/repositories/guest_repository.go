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

type GuestRepository struct {
	DB *sql.DB
}

func (r GuestRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const guestColumns = `id, name, email, phone,
	COALESCE(address,''), COALESCE(country,''), COALESCE(id_number,''), created_at`

func (r GuestRepository) Insert(guest models.Guest) error {
	_, err := r.db().Exec(`
		INSERT INTO guests (id, name, email, phone, address, country, id_number, created_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		guest.ID, guest.Name, guest.Email, guest.Phone,
		intdb.NullIfEmpty(guest.Address), intdb.NullIfEmpty(guest.Country),
		intdb.NullIfEmpty(guest.IDNumber), guest.CreatedAt,
	)
	return err
}

func (r GuestRepository) GetByID(id string) (models.Guest, error) {
	row := r.db().QueryRow(`SELECT `+guestColumns+` FROM guests WHERE id=? LIMIT 1`, id)
	guest, err := scanGuest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Guest{}, domain.NotFoundError{Resource: "guest"}
	}
	return guest, err
}

func (r GuestRepository) List() ([]models.Guest, error) {
	rows, err := r.db().Query(`SELECT ` + guestColumns + ` FROM guests ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGuests(rows)
}

// Search filters by case-insensitive substring over name, email and phone.
func (r GuestRepository) Search(query string) ([]models.Guest, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	rows, err := r.db().Query(`
		SELECT `+guestColumns+`
		FROM guests
		WHERE LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?
		ORDER BY name ASC`, like, like, like)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGuests(rows)
}

func (r GuestRepository) EmailExists(email, excludeID string) (bool, error) {
	var id string
	err := r.db().QueryRow(`SELECT id FROM guests WHERE email=? AND id<>? LIMIT 1`, email, excludeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Update replaces all writable fields (PUT semantics).
func (r GuestRepository) Update(id string, in models.GuestInput) error {
	_, err := r.db().Exec(`
		UPDATE guests SET name=?, email=?, phone=?, address=?, country=?, id_number=?
		WHERE id=?`,
		in.Name, in.Email, in.Phone, intdb.NullIfEmpty(in.Address),
		intdb.NullIfEmpty(in.Country), intdb.NullIfEmpty(in.IDNumber), id,
	)
	return err
}

func (r GuestRepository) Delete(id string) error {
	_, err := r.db().Exec(`DELETE FROM guests WHERE id=?`, id)
	return err
}

func scanGuest(row rowScanner) (models.Guest, error) {
	var guest models.Guest
	err := row.Scan(
		&guest.ID,
		&guest.Name,
		&guest.Email,
		&guest.Phone,
		&guest.Address,
		&guest.Country,
		&guest.IDNumber,
		&guest.CreatedAt,
	)
	return guest, err
}

func collectGuests(rows *sql.Rows) ([]models.Guest, error) {
	out := []models.Guest{}
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, guest)
	}
	return out, rows.Err()
}
