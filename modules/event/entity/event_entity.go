package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"event-rsvp-api/core/entity"

	"github.com/google/uuid"
)

// AgendaItem is one scheduled entry in the event program. Time is a display
// label ("20:00"), not a parsed timestamp.
type AgendaItem struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// AgendaItems is stored as a JSONB column, preserving order.
type AgendaItems []AgendaItem

func (a AgendaItems) Value() (driver.Value, error) {
	if a == nil {
		a = AgendaItems{}
	}
	return json.Marshal(a)
}

func (a *AgendaItems) Scan(value any) error {
	if value == nil {
		*a = AgendaItems{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

type Event struct {
	entity.BaseEntity
	Title             string      `db:"title" json:"title"`
	Date              time.Time   `db:"date" json:"date"`
	EndDate           *time.Time  `db:"end_date" json:"end_date"`
	DressCode         string      `db:"dress_code" json:"dress_code"`
	Address           string      `db:"address" json:"address"`
	GuestInfo         string      `db:"guest_info" json:"guest_info"`
	Agenda            AgendaItems `db:"agenda" json:"agenda"`
	IsActive          bool        `db:"is_active" json:"is_active"`
	ShowOnHomepage    bool        `db:"show_on_homepage" json:"show_on_homepage"`
	VideoURL          string      `db:"video_url" json:"video_url"`
	AnimationDuration int         `db:"animation_duration" json:"animation_duration"`
	CreatedBy         *uuid.UUID  `db:"created_by" json:"created_by"`
}

type PaginatedEventEntity = entity.Pagination[Event]

type EventStats struct {
	TotalEvents    int `db:"total_events" json:"totalEvents"`
	ActiveEvents   int `db:"active_events" json:"activeEvents"`
	InactiveEvents int `db:"inactive_events" json:"inactiveEvents"`
}
