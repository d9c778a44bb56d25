package database

import (
	_ "embed"

	"event-rsvp-api/core/logger"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// bootstrapSchema applies the idempotent DDL on startup. Every statement is
// IF NOT EXISTS so re-running against an existing database is a no-op.
func bootstrapSchema(db *sqlx.DB) error {
	logger.Info("Applying database schema...")
	if _, err := db.Exec(schemaSQL); err != nil {
		return err
	}
	logger.Info("Database schema applied")
	return nil
}
