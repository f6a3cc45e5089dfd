package models

import (
	"time"

	"github.com/google/uuid"
)

type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	Country   string    `json:"country,omitempty"`
	IDNumber  string    `json:"id_number,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GuestInput carries the writable guest fields; updates replace all of them,
// matching PUT semantics.
type GuestInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Country  string `json:"country"`
	IDNumber string `json:"id_number"`
}

func NewGuest(in GuestInput) Guest {
	return Guest{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Country:   in.Country,
		IDNumber:  in.IDNumber,
		CreatedAt: time.Now().UTC(),
	}
}
