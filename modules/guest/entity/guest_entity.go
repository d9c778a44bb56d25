package entity

import (
	"event-rsvp-api/core/entity"
)

// Guest is one RSVP record. Email and phone are stored normalized
// (trimmed, lowercased) and each carries a unique index; identity
// resolution on registration matches either field.
type Guest struct {
	entity.BaseEntity
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Phone    string `db:"phone" json:"phone"`
	Company  string `db:"company" json:"company"`
	Position string `db:"position" json:"position"`
	Going    bool   `db:"going" json:"going"`
}

type AttendanceFilter string

const (
	FilterAll      AttendanceFilter = "all"
	FilterGoing    AttendanceFilter = "going"
	FilterNotGoing AttendanceFilter = "notgoing"
)

// ListOptions narrows and orders the guest list. Pagination is deliberately
// absent: the admin UI pages the full result client-side.
type ListOptions struct {
	Filter    AttendanceFilter
	Search    string
	SortBy    string // created_at | name | phone | company | position
	SortOrder string // asc | desc
}

type GuestCounts struct {
	Total    int `db:"total" json:"total"`
	Going    int `db:"going" json:"going"`
	NotGoing int `db:"not_going" json:"notGoing"`
}
