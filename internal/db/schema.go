package db

import (
	"database/sql"
)

// Date columns are VARCHAR(10) holding YYYY-MM-DD; lexical comparison in SQL
// matches calendar ordering for that form.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		id              VARCHAR(36) PRIMARY KEY,
		room_number     VARCHAR(32) NOT NULL UNIQUE,
		room_type       VARCHAR(16) NOT NULL,
		price_per_night DOUBLE NOT NULL,
		status          VARCHAR(16) NOT NULL,
		description     TEXT,
		max_occupancy   INT NOT NULL DEFAULT 2,
		amenities       TEXT,
		created_at      DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS guests (
		id         VARCHAR(36) PRIMARY KEY,
		name       VARCHAR(191) NOT NULL,
		email      VARCHAR(191) NOT NULL UNIQUE,
		phone      VARCHAR(32) NOT NULL,
		address    TEXT,
		country    VARCHAR(64),
		id_number  VARCHAR(64),
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id               VARCHAR(36) PRIMARY KEY,
		guest_id         VARCHAR(36) NOT NULL,
		room_id          VARCHAR(36) NOT NULL,
		check_in_date    VARCHAR(10) NOT NULL,
		check_out_date   VARCHAR(10) NOT NULL,
		status           VARCHAR(16) NOT NULL,
		total_amount     DOUBLE NOT NULL,
		special_requests TEXT,
		created_at       DATETIME NOT NULL,
		INDEX idx_bookings_room (room_id, status),
		INDEX idx_bookings_guest (guest_id, status)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           VARCHAR(36) PRIMARY KEY,
		booking_id   VARCHAR(36) NOT NULL,
		payment_type VARCHAR(16) NOT NULL,
		amount       DOUBLE NOT NULL,
		payment_date DATETIME NOT NULL,
		status       VARCHAR(16) NOT NULL,
		description  TEXT,
		is_advance   TINYINT(1) NOT NULL DEFAULT 0,
		INDEX idx_payments_booking (booking_id),
		INDEX idx_payments_date (payment_date)
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id           VARCHAR(36) PRIMARY KEY,
		category     VARCHAR(16) NOT NULL,
		amount       DOUBLE NOT NULL,
		description  TEXT,
		expense_date VARCHAR(10) NOT NULL,
		created_at   DATETIME NOT NULL,
		INDEX idx_expenses_date (expense_date)
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id             VARCHAR(36) PRIMARY KEY,
		booking_id     VARCHAR(36) NOT NULL,
		guest_name     VARCHAR(191) NOT NULL,
		room_number    VARCHAR(32) NOT NULL,
		check_in_date  VARCHAR(10) NOT NULL,
		check_out_date VARCHAR(10) NOT NULL,
		total_amount   DOUBLE NOT NULL,
		advance_paid   DOUBLE NOT NULL,
		balance_due    DOUBLE NOT NULL,
		payments       TEXT,
		created_at     DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id            VARCHAR(36) PRIMARY KEY,
		name          VARCHAR(191) NOT NULL,
		email         VARCHAR(191) NOT NULL UNIQUE,
		password_hash VARCHAR(191) NOT NULL,
		role          VARCHAR(32) NOT NULL,
		created_at    DATETIME NOT NULL
	)`,
}

// EnsureSchema creates missing tables at startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

type QueryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

func HasTable(q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRow(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)

	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
