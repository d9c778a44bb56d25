package entity

import "event-rsvp-api/core/entity"

// User is an admin account. There is no self-service registration; the
// single admin is seeded from configuration at startup.
type User struct {
	entity.BaseEntity
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}
