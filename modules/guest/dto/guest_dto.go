package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterGuestRequest is the public RSVP submission body. Going defaults
// to true when omitted.
type RegisterGuestRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Going    *bool  `json:"going"`
}

type GuestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Going     bool      `json:"going"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GuestListResponse struct {
	Guests []GuestResponse `json:"guests"`
	Total  int             `json:"total"`
}

type GuestStatsResponse struct {
	Total    int `json:"total"`
	Going    int `json:"going"`
	NotGoing int `json:"notGoing"`
}

type DeleteAllGuestsResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
