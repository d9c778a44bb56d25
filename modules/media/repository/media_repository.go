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
	"event-rsvp-api/modules/media/entity"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("media not found")

const mediaColumns = "id, title, description, type, file_name, file_key, file_url, file_size, mime_type, duration, thumbnail, status, created_at, updated_at"

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	List(ctx context.Context, qp *params.QueryParams, mediaType entity.MediaType, status entity.MediaStatus) (*entity.PaginatedMediaEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	GetActiveByType(ctx context.Context, mediaType entity.MediaType) (*entity.Media, error)
	Update(ctx context.Context, media *entity.Media) error
	Activate(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Media, error)
	Stats(ctx context.Context) (entity.MediaStats, error)
}

type mediaRepository struct {
	db database.Database
}

func NewMediaRepository(db database.Database) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	query := `
		INSERT INTO media (title, description, type, file_name, file_key, file_url, file_size, mime_type, duration, thumbnail, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + mediaColumns

	err := r.db.GetContext(ctx, media, query,
		media.Title, media.Description, media.Type, media.FileName, media.FileKey,
		media.FileURL, media.FileSize, media.MimeType, media.Duration, media.Thumbnail,
		media.Status,
	)
	if err != nil {
		logger.Error("MediaRepository:Create:Error", "error", err, "title", media.Title)
		return err
	}
	return nil
}

func (r *mediaRepository) List(ctx context.Context, qp *params.QueryParams, mediaType entity.MediaType, status entity.MediaStatus) (*entity.PaginatedMediaEntity, error) {
	var (
		conditions []string
		args       []any
	)
	argIndex := 1

	if mediaType != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argIndex))
		args = append(args, mediaType)
		argIndex++
	}
	if status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if qp.Search != "" {
		cond := fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR file_name ILIKE $%d)", argIndex, argIndex, argIndex)
		conditions = append(conditions, cond)
		args = append(args, "%"+qp.Search+"%")
		argIndex++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM media"+where, args...); err != nil {
		logger.Error("MediaRepository:List:Count:Error", "error", err)
		return nil, err
	}

	sortColumn := "created_at"
	switch qp.SortBy {
	case "title", "file_size", "created_at":
		sortColumn = qp.SortBy
	}
	direction := "DESC"
	if qp.SortOrder == "asc" {
		direction = "ASC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM media%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
		mediaColumns, where, sortColumn, direction, direction, argIndex, argIndex+1,
	)
	args = append(args, qp.PageSize, (qp.PageNumber-1)*qp.PageSize)

	var items []entity.Media
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("MediaRepository:List:Error", "error", err)
		return nil, err
	}
	if items == nil {
		items = []entity.Media{}
	}

	return &entity.PaginatedMediaEntity{
		Items:      items,
		TotalItems: total,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var media entity.Media
	query := "SELECT " + mediaColumns + " FROM media WHERE id = $1"
	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:GetByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) GetActiveByType(ctx context.Context, mediaType entity.MediaType) (*entity.Media, error) {
	var media entity.Media
	query := "SELECT " + mediaColumns + " FROM media WHERE type = $1 AND status = 'active' ORDER BY updated_at DESC LIMIT 1"
	err := r.db.GetContext(ctx, &media, query, mediaType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:GetActiveByType:Error", "error", err, "type", mediaType)
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Update(ctx context.Context, media *entity.Media) error {
	query := `
		UPDATE media
		SET title = $1, description = $2, updated_at = now()
		WHERE id = $3
		RETURNING ` + mediaColumns

	err := r.db.GetContext(ctx, media, query, media.Title, media.Description, media.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:Update:Error", "error", err, "id", media.ID)
		return err
	}
	return nil
}

// Activate marks one item active and deactivates every other item of the
// same type in a single transaction, so at most one video and one image are
// live at any time.
func (r *mediaRepository) Activate(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	tx, err := r.db.SQLx().BeginTxx(ctx, nil)
	if err != nil {
		logger.Error("MediaRepository:Activate:Begin:Error", "error", err)
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var mediaType entity.MediaType
	err = tx.GetContext(ctx, &mediaType, "SELECT type FROM media WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:Activate:Type:Error", "error", err, "id", id)
		return nil, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE media SET status = 'inactive', updated_at = now() WHERE type = $1 AND status = 'active' AND id <> $2",
		mediaType, id,
	); err != nil {
		logger.Error("MediaRepository:Activate:Deactivate:Error", "error", err)
		return nil, err
	}

	var media entity.Media
	query := "UPDATE media SET status = 'active', updated_at = now() WHERE id = $1 RETURNING " + mediaColumns
	if err := tx.GetContext(ctx, &media, query, id); err != nil {
		logger.Error("MediaRepository:Activate:Error", "error", err, "id", id)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Deactivate(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var media entity.Media
	query := "UPDATE media SET status = 'inactive', updated_at = now() WHERE id = $1 RETURNING " + mediaColumns
	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:Deactivate:Error", "error", err, "id", id)
		return nil, err
	}
	return &media, nil
}

// DeleteByID removes the row and returns it so the caller can schedule the
// object-store cleanup.
func (r *mediaRepository) DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	var media entity.Media
	query := "DELETE FROM media WHERE id = $1 RETURNING " + mediaColumns
	err := r.db.GetContext(ctx, &media, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("MediaRepository:DeleteByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Stats(ctx context.Context) (entity.MediaStats, error) {
	var stats entity.MediaStats
	query := `
		SELECT
			COUNT(*) AS total_media,
			COUNT(*) FILTER (WHERE type = 'video') AS total_videos,
			COUNT(*) FILTER (WHERE type = 'image') AS total_images,
			COUNT(*) FILTER (WHERE status = 'active') AS active_media,
			COALESCE(SUM(file_size), 0) AS total_bytes
		FROM media
	`
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		logger.Error("MediaRepository:Stats:Error", "error", err)
		return entity.MediaStats{}, err
	}
	return stats, nil
}
