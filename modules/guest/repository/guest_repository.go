package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/guest/entity"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("guest not found")

const guestColumns = "id, name, email, phone, company, position, going, created_at, updated_at"

type GuestRepository interface {
	Upsert(ctx context.Context, guest *entity.Guest) error
	List(ctx context.Context, opts entity.ListOptions) ([]entity.Guest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	Counts(ctx context.Context) (entity.GuestCounts, error)
}

type guestRepository struct {
	db database.Database
}

func NewGuestRepository(db database.Database) GuestRepository {
	return &guestRepository{db: db}
}

// Upsert updates the record matching the guest's email OR phone, inserting
// when neither matches. The whole find-and-write runs in one transaction
// and the unique indexes on email and phone are the final arbiter for
// racing submissions; callers translate unique violations to a conflict.
func (r *guestRepository) Upsert(ctx context.Context, guest *entity.Guest) error {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("GuestRepository:Upsert:Begin:Error", "error", err)
		return err
	}
	defer func() { _ = tx.Rollback() }()

	updateQuery := `
		UPDATE guests
		SET name = $1, email = $2, phone = $3, company = $4, position = $5, going = $6, updated_at = now()
		WHERE id = (
			SELECT id FROM guests WHERE email = $2 OR phone = $3 ORDER BY created_at, id LIMIT 1
		)
		RETURNING ` + guestColumns

	err = tx.GetContext(ctx, guest, updateQuery,
		guest.Name, guest.Email, guest.Phone, guest.Company, guest.Position, guest.Going,
	)
	if errors.Is(err, sql.ErrNoRows) {
		insertQuery := `
			INSERT INTO guests (name, email, phone, company, position, going)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING ` + guestColumns
		err = tx.GetContext(ctx, guest, insertQuery,
			guest.Name, guest.Email, guest.Phone, guest.Company, guest.Position, guest.Going,
		)
	}
	if err != nil {
		logger.Error("GuestRepository:Upsert:Error", "error", err, "email", guest.Email)
		return err
	}

	return tx.Commit()
}

// buildListQuery assembles the filtered/sorted SELECT. Sort keys are
// whitelisted; equal keys fall back to creation order so the result is
// stable across calls.
func buildListQuery(opts entity.ListOptions) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	argIndex := 1

	switch opts.Filter {
	case entity.FilterGoing:
		conditions = append(conditions, "going = true")
	case entity.FilterNotGoing:
		conditions = append(conditions, "going = false")
	}

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		cond := fmt.Sprintf(
			"(name ILIKE $%d OR phone ILIKE $%d OR email ILIKE $%d OR company ILIKE $%d OR position ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex, argIndex,
		)
		conditions = append(conditions, cond)
		args = append(args, pattern)
		argIndex++
	}

	query := "SELECT " + guestColumns + " FROM guests"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	sortColumn := "created_at"
	switch opts.SortBy {
	case "name", "phone", "company", "position", "created_at":
		sortColumn = opts.SortBy
	}

	// Default listing: most recently created first.
	direction := "DESC"
	if opts.SortOrder == "asc" {
		direction = "ASC"
	}

	if sortColumn == "created_at" {
		query += fmt.Sprintf(" ORDER BY created_at %s, id ASC", direction)
	} else {
		query += fmt.Sprintf(" ORDER BY %s %s, created_at ASC, id ASC", sortColumn, direction)
	}

	return query, args
}

func (r *guestRepository) List(ctx context.Context, opts entity.ListOptions) ([]entity.Guest, error) {
	query, args := buildListQuery(opts)

	var guests []entity.Guest
	if err := r.db.SelectContext(ctx, &guests, query, args...); err != nil {
		logger.Error("GuestRepository:List:Error", "error", err)
		return nil, err
	}
	if guests == nil {
		guests = []entity.Guest{}
	}
	return guests, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	query := "SELECT " + guestColumns + " FROM guests WHERE id = $1"
	err := r.db.GetContext(ctx, &guest, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("GuestRepository:GetByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.SQLx().ExecContext(ctx, "DELETE FROM guests WHERE id = $1", id)
	if err != nil {
		logger.Error("GuestRepository:DeleteByID:Error", "error", err, "id", id)
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

func (r *guestRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.SQLx().ExecContext(ctx, "DELETE FROM guests")
	if err != nil {
		logger.Error("GuestRepository:DeleteAll:Error", "error", err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *guestRepository) Counts(ctx context.Context) (entity.GuestCounts, error) {
	var counts entity.GuestCounts
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE going) AS going,
			COUNT(*) FILTER (WHERE NOT going) AS not_going
		FROM guests
	`
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		logger.Error("GuestRepository:Counts:Error", "error", err)
		return entity.GuestCounts{}, err
	}
	return counts, nil
}
