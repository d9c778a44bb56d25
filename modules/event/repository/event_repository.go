package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/params"
	"event-rsvp-api/modules/event/entity"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("event not found")

const eventColumns = "id, title, date, end_date, dress_code, address, guest_info, agenda, is_active, show_on_homepage, video_url, animation_duration, created_by, created_at, updated_at"

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	List(ctx context.Context, params *params.QueryParams, isActive *bool) (*entity.PaginatedEventEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetActive(ctx context.Context) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	UpdateAgenda(ctx context.Context, id uuid.UUID, agenda entity.AgendaItems) (*entity.Event, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Event, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (entity.EventStats, error)
}

type eventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (title, date, end_date, dress_code, address, guest_info, agenda,
			is_active, show_on_homepage, video_url, animation_duration, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + eventColumns

	err := r.db.GetContext(ctx, event, query,
		event.Title, event.Date, event.EndDate, event.DressCode, event.Address, event.GuestInfo,
		event.Agenda, event.IsActive, event.ShowOnHomepage, event.VideoURL, event.AnimationDuration,
		event.CreatedBy,
	)
	if err != nil {
		logger.Error("EventRepository:Create:Error", "error", err, "title", event.Title)
		return err
	}
	return nil
}

func (r *eventRepository) List(ctx context.Context, qp *params.QueryParams, isActive *bool) (*entity.PaginatedEventEntity, error) {
	var (
		conditions []string
		args       []any
	)
	argIndex := 1

	if isActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIndex))
		args = append(args, *isActive)
		argIndex++
	}
	if qp.Search != "" {
		cond := fmt.Sprintf("(title ILIKE $%d OR address ILIKE $%d)", argIndex, argIndex)
		conditions = append(conditions, cond)
		args = append(args, "%"+qp.Search+"%")
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM events"+where, args...); err != nil {
		logger.Error("EventRepository:List:Count:Error", "error", err)
		return nil, err
	}

	sortColumn := "created_at"
	switch qp.SortBy {
	case "title", "date", "created_at":
		sortColumn = qp.SortBy
	}
	direction := "DESC"
	if qp.SortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM events%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
		eventColumns, where, sortColumn, direction, direction, argIndex, argIndex+1,
	)
	args = append(args, qp.PageSize, (qp.PageNumber-1)*qp.PageSize)

	var events []entity.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:List:Error", "error", err)
		return nil, err
	}
	if events == nil {
		events = []entity.Event{}
	}

	return &entity.PaginatedEventEntity{
		Items:      events,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	query := "SELECT " + eventColumns + " FROM events WHERE id = $1"
	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("EventRepository:GetByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &event, nil
}

// GetActive returns the live event for the landing page: active, marked for
// the homepage, preferring the most recently updated one when an older
// deploy left several flagged.
func (r *eventRepository) GetActive(ctx context.Context) (*entity.Event, error) {
	var event entity.Event
	query := "SELECT " + eventColumns + " FROM events WHERE is_active = true AND show_on_homepage = true ORDER BY updated_at DESC LIMIT 1"
	err := r.db.GetContext(ctx, &event, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("EventRepository:GetActive:Error", "error", err)
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $1, date = $2, end_date = $3, dress_code = $4, address = $5, guest_info = $6,
			agenda = $7, is_active = $8, show_on_homepage = $9, video_url = $10,
			animation_duration = $11, updated_at = now()
		WHERE id = $12
		RETURNING ` + eventColumns

	err := r.db.GetContext(ctx, event, query,
		event.Title, event.Date, event.EndDate, event.DressCode, event.Address, event.GuestInfo,
		event.Agenda, event.IsActive, event.ShowOnHomepage, event.VideoURL, event.AnimationDuration,
		event.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Error("EventRepository:Update:Error", "error", err, "id", event.ID)
		return err
	}
	return nil
}

// UpdateAgenda rewrites only the agenda column.
func (r *eventRepository) UpdateAgenda(ctx context.Context, id uuid.UUID, agenda entity.AgendaItems) (*entity.Event, error) {
	var event entity.Event
	query := "UPDATE events SET agenda = $1, updated_at = now() WHERE id = $2 RETURNING " + eventColumns
	err := r.db.GetContext(ctx, &event, query, agenda, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("EventRepository:UpdateAgenda:Error", "error", err, "id", id)
		return nil, err
	}
	return &event, nil
}

// SetActive flips the flag on one event; activating also deactivates every
// other event in the same transaction so at most one stays active.
func (r *eventRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Event, error) {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("EventRepository:SetActive:Begin:Error", "error", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if active {
		if _, err := tx.ExecContext(ctx,
			"UPDATE events SET is_active = false, updated_at = now() WHERE is_active = true AND id <> $1", id,
		); err != nil {
			logger.Error("EventRepository:SetActive:Deactivate:Error", "error", err)
			return nil, err
		}
	}

	var event entity.Event
	query := "UPDATE events SET is_active = $1, updated_at = now() WHERE id = $2 RETURNING " + eventColumns
	err = tx.GetContext(ctx, &event, query, active, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("EventRepository:SetActive:Error", "error", err, "id", id)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.SQLx().ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		logger.Error("EventRepository:DeleteByID:Error", "error", err, "id", id)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) Stats(ctx context.Context) (entity.EventStats, error) {
	var stats entity.EventStats
	query := `
		SELECT
			COUNT(*) AS total_events,
			COUNT(*) FILTER (WHERE is_active) AS active_events,
			COUNT(*) FILTER (WHERE NOT is_active) AS inactive_events
		FROM events
	`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		logger.Error("EventRepository:Stats:Error", "error", err)
		return entity.EventStats{}, err
	}
	return stats, nil
}
