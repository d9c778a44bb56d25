package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/settings/entity"
)

const settingsColumns = `id, logo_text, subtitle_text, going_button_text, cant_go_button_text,
	dress_code_label, address_label, event_agenda_label, guest_info_label,
	going_button_color, going_button_text_color, going_button_hover_color,
	cant_go_button_color, cant_go_button_text_color, cant_go_button_border_color,
	cant_go_button_hover_color, logo_image, show_linear_gradient, show_radial_gradient,
	created_at, updated_at`

// allowedUpdateColumns whitelists what a partial update may touch. Anything
// else in the payload is ignored, never an error.
var allowedUpdateColumns = map[string]struct{}{
	"logo_text":                   {},
	"subtitle_text":               {},
	"going_button_text":           {},
	"cant_go_button_text":         {},
	"dress_code_label":            {},
	"address_label":               {},
	"event_agenda_label":          {},
	"guest_info_label":            {},
	"going_button_color":          {},
	"going_button_text_color":     {},
	"going_button_hover_color":    {},
	"cant_go_button_color":        {},
	"cant_go_button_text_color":   {},
	"cant_go_button_border_color": {},
	"cant_go_button_hover_color":  {},
	"logo_image":                  {},
	"show_linear_gradient":        {},
	"show_radial_gradient":        {},
}

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, fields map[string]any) (*entity.Settings, error)
	Reset(ctx context.Context) (*entity.Settings, error)
}

type settingsRepository struct {
	db database.Database
}

func NewSettingsRepository(db database.Database) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the settings row, creating it with column defaults on first
// call. The insert races benignly: a concurrent creator just means the
// re-read finds a row.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settings entity.Settings
	query := "SELECT " + settingsColumns + " FROM settings ORDER BY created_at LIMIT 1"

	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		if err := r.db.ExecContext(ctx, "INSERT INTO settings DEFAULT VALUES"); err != nil {
			logger.Error("SettingsRepository:Get:Seed:Error", "error", err)
			return nil, err
		}
		err = r.db.GetContext(ctx, &settings, query)
	}
	if err != nil {
		logger.Error("SettingsRepository:Get:Error", "error", err)
		return nil, err
	}
	return &settings, nil
}

// Update applies the given column/value pairs to the single row. Columns
// outside the whitelist are dropped; an empty effective set is a plain Get.
func (r *settingsRepository) Update(ctx context.Context, fields map[string]any) (*entity.Settings, error) {
	current, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	var (
		assignments []string
		args        []any
	)
	argIndex := 1
	for _, column := range sortedColumns(fields) {
		if _, ok := allowedUpdateColumns[column]; !ok {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, fields[column])
		argIndex++
	}
	if len(assignments) == 0 {
		return current, nil
	}

	query := fmt.Sprintf(
		"UPDATE settings SET %s, updated_at = now() WHERE id = $%d RETURNING %s",
		strings.Join(assignments, ", "), argIndex, settingsColumns,
	)
	args = append(args, current.ID)

	var settings entity.Settings
	if err := r.db.GetContext(ctx, &settings, query, args...); err != nil {
		logger.Error("SettingsRepository:Update:Error", "error", err)
		return nil, err
	}
	return &settings, nil
}

// Reset drops the row so the next Get recreates it with column defaults.
func (r *settingsRepository) Reset(ctx context.Context) (*entity.Settings, error) {
	if err := r.db.ExecContext(ctx, "DELETE FROM settings"); err != nil {
		logger.Error("SettingsRepository:Reset:Error", "error", err)
		return nil, err
	}
	return r.Get(ctx)
}

// sortedColumns fixes the assignment order so generated SQL is
// deterministic for a given payload.
func sortedColumns(fields map[string]any) []string {
	columns := make([]string, 0, len(fields))
	for column := range fields {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
