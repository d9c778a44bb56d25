package dto

import (
	"time"

	coredto "event-rsvp-api/core/dto"

	"github.com/google/uuid"
)

type AgendaItemRequest struct {
	Time     string `json:"time"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type AgendaItemResponse struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type CreateEventRequest struct {
	Title             string              `json:"title"`
	Date              string              `json:"date"`
	EndDate           string              `json:"end_date"`
	DressCode         string              `json:"dress_code"`
	Address           string              `json:"address"`
	GuestInfo         string              `json:"guest_info"`
	Agenda            []AgendaItemRequest `json:"agenda"`
	IsActive          *bool               `json:"is_active"`
	ShowOnHomepage    *bool               `json:"show_on_homepage"`
	VideoURL          string              `json:"video_url"`
	AnimationDuration *int                `json:"animation_duration"`
}

// UpdateEventRequest is a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title             *string              `json:"title"`
	Date              *string              `json:"date"`
	EndDate           *string              `json:"end_date"`
	DressCode         *string              `json:"dress_code"`
	Address           *string              `json:"address"`
	GuestInfo         *string              `json:"guest_info"`
	Agenda            *[]AgendaItemRequest `json:"agenda"`
	IsActive          *bool                `json:"is_active"`
	ShowOnHomepage    *bool                `json:"show_on_homepage"`
	VideoURL          *string              `json:"video_url"`
	AnimationDuration *int                 `json:"animation_duration"`
}

type EventResponse struct {
	ID                uuid.UUID            `json:"id"`
	Title             string               `json:"title"`
	Date              time.Time            `json:"date"`
	EndDate           *time.Time           `json:"end_date"`
	DressCode         string               `json:"dress_code"`
	Address           string               `json:"address"`
	GuestInfo         string               `json:"guest_info"`
	Agenda            []AgendaItemResponse `json:"agenda"`
	IsActive          bool                 `json:"is_active"`
	ShowOnHomepage    bool                 `json:"show_on_homepage"`
	VideoURL          string               `json:"video_url"`
	AnimationDuration int                  `json:"animation_duration"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type PaginatedEventResponse = coredto.Pagination[EventResponse]

type EventStatsResponse struct {
	TotalEvents    int `json:"totalEvents"`
	ActiveEvents   int `json:"activeEvents"`
	InactiveEvents int `json:"inactiveEvents"`
}

type CalendarURLResponse struct {
	URL string `json:"url"`
}
