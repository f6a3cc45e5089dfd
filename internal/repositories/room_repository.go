package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "hotel-backend/internal/config"
	intdb "hotel-backend/internal/db"
	"hotel-backend/internal/domain"
	"hotel-backend/internal/domain/models"
)

type RoomRepository struct {
	DB *sql.DB
}

func (r RoomRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const roomColumns = `id, room_number, room_type, price_per_night, status,
	COALESCE(description,''), max_occupancy, COALESCE(amenities,'[]'), created_at`

func (r RoomRepository) Insert(room models.Room) error {
	amenities, err := json.Marshal(room.Amenities)
	if err != nil {
		return err
	}
	_, err = r.db().Exec(`
		INSERT INTO rooms
		  (id, room_number, room_type, price_per_night, status, description, max_occupancy, amenities, created_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		room.ID, room.RoomNumber, string(room.RoomType), room.PricePerNight,
		string(room.Status), intdb.NullIfEmpty(room.Description), room.MaxOccupancy, string(amenities), room.CreatedAt,
	)
	return err
}

func (r RoomRepository) GetByID(id string) (models.Room, error) {
	row := r.db().QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id=? LIMIT 1`, id)
	room, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Room{}, domain.NotFoundError{Resource: "room"}
	}
	return room, err
}

func (r RoomRepository) List() ([]models.Room, error) {
	rows, err := r.db().Query(`SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Room{}
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// NumberExists reports whether another room already carries this number.
func (r RoomRepository) NumberExists(number, excludeID string) (bool, error) {
	var id string
	err := r.db().QueryRow(`SELECT id FROM rooms WHERE room_number=? AND id<>? LIMIT 1`, number, excludeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r RoomRepository) Update(id string, patch models.RoomPatch) error {
	sets := []string{}
	args := []any{}

	if patch.RoomType != nil {
		sets = append(sets, "room_type=?")
		args = append(args, string(*patch.RoomType))
	}
	if patch.PricePerNight != nil {
		sets = append(sets, "price_per_night=?")
		args = append(args, *patch.PricePerNight)
	}
	if patch.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*patch.Status))
	}
	if patch.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *patch.Description)
	}
	if patch.MaxOccupancy != nil {
		sets = append(sets, "max_occupancy=?")
		args = append(args, *patch.MaxOccupancy)
	}
	if patch.Amenities != nil {
		amenities, err := json.Marshal(*patch.Amenities)
		if err != nil {
			return err
		}
		sets = append(sets, "amenities=?")
		args = append(args, string(amenities))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().Exec(`UPDATE rooms SET `+strings.Join(sets, ", ")+` WHERE id=?`, args...)
	return err
}

func (r RoomRepository) UpdateStatus(id string, status domain.RoomStatus) error {
	_, err := r.db().Exec(`UPDATE rooms SET status=? WHERE id=?`, string(status), id)
	return err
}

func (r RoomRepository) Delete(id string) error {
	_, err := r.db().Exec(`DELETE FROM rooms WHERE id=?`, id)
	return err
}

func (r RoomRepository) Count() (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

func (r RoomRepository) CountByStatus(status domain.RoomStatus) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM rooms WHERE status=?`, string(status)).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (models.Room, error) {
	var (
		room      models.Room
		roomType  string
		status    string
		amenities string
	)
	if err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&roomType,
		&room.PricePerNight,
		&status,
		&room.Description,
		&room.MaxOccupancy,
		&amenities,
		&room.CreatedAt,
	); err != nil {
		return models.Room{}, err
	}
	room.RoomType = domain.RoomType(roomType)
	room.Status = domain.RoomStatus(status)
	if err := json.Unmarshal([]byte(amenities), &room.Amenities); err != nil {
		room.Amenities = []string{}
	}
	return room, nil
}
