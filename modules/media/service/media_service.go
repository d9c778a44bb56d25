package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/params"
	"event-rsvp-api/core/storage"
	"event-rsvp-api/core/utils"
	"event-rsvp-api/modules/media/dto"
	"event-rsvp-api/modules/media/entity"
	"event-rsvp-api/modules/media/repository"
	"event-rsvp-api/modules/media/tasks"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hibiken/asynq"
)

// UploadInput carries the file stream plus its form metadata.
type UploadInput struct {
	Title       string
	Description string
	Type        entity.MediaType
	FileName    string
	MimeType    string
	Size        int64
	Body        io.Reader
}

type MediaService struct {
	repo  repository.MediaRepository
	store storage.ObjectStore
	tasks *asynq.Client
}

func NewMediaService(repo repository.MediaRepository, store storage.ObjectStore, tasks *asynq.Client) *MediaService {
	return &MediaService{repo: repo, store: store, tasks: tasks}
}

// Upload validates the file, writes it to the object store and records the
// row. New uploads start inactive; activation is an explicit step.
func (s *MediaService) Upload(ctx context.Context, in *UploadInput) (*entity.Media, *apperrors.AppError) {
	if !in.Type.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Type must be video or image.", nil)
	}
	if in.Size <= 0 || in.Body == nil {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "A file is required.", nil)
	}
	if in.Size > constants.MaxUploadSizeBytes {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "File exceeds the maximum upload size.", nil)
	}
	if !mimeAllowed(in.Type, in.MimeType) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Unsupported file type for "+string(in.Type)+".", nil)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = strings.TrimSuffix(in.FileName, filepath.Ext(in.FileName))
	}

	key := objectKey(in.Type, title, in.FileName)
	if err := s.store.Put(ctx, key, in.MimeType, in.Body, in.Size); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrStoreUnavailable, "Failed to store the uploaded file.", err)
	}

	media := &entity.Media{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Type:        in.Type,
		FileName:    in.FileName,
		FileKey:     key,
		FileURL:     s.store.PublicURL(key),
		FileSize:    in.Size,
		MimeType:    in.MimeType,
		Status:      entity.MediaStatusInactive,
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, media); err != nil {
		// The row failed after the object landed; schedule the orphan for
		// removal instead of leaking it.
		s.enqueueCleanup(key)
		return nil, apperrors.TranslateStoreError(err, "Failed to save media record")
	}

	logger.Info("MediaService:Upload:Success", "media_id", media.ID, "type", media.Type, "size", media.FileSize)
	return media, nil
}

func (s *MediaService) ListMedia(ctx context.Context, qp *params.QueryParams, mediaType entity.MediaType, status entity.MediaStatus) (*entity.PaginatedMediaEntity, *apperrors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	page, err := s.repo.List(ctx, qp, mediaType, status)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to list media")
	}
	return page, nil
}

func (s *MediaService) GetMediaByID(ctx context.Context, id uuid.UUID) (*entity.Media, *apperrors.AppError) {
	media, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Media not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to fetch media")
	}
	return media, nil
}

// GetActiveMedia returns the currently live item of the given type; the
// landing page uses it for the background video and poster image.
func (s *MediaService) GetActiveMedia(ctx context.Context, mediaType entity.MediaType) (*entity.Media, *apperrors.AppError) {
	if !mediaType.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Type must be video or image.", nil)
	}
	media, err := s.repo.GetActiveByType(ctx, mediaType)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "No active "+string(mediaType), err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to fetch active media")
	}
	return media, nil
}

func (s *MediaService) UpdateMedia(ctx context.Context, id uuid.UUID, req *dto.UpdateMediaRequest) (*entity.Media, *apperrors.AppError) {
	media, appErr := s.GetMediaByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Title cannot be empty.", nil)
		}
		media.Title = title
	}
	if req.Description != nil {
		media.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(ctx, media); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Media not found", err)
		}
		return nil, apperrors.TranslateStoreError(err, "Failed to update media")
	}
	return media, nil
}

func (s *MediaService) ActivateMedia(ctx context.Context, id uuid.UUID) (*entity.Media, *apperrors.AppError) {
	media, err := s.repo.Activate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Media not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to activate media")
	}
	logger.Info("MediaService:ActivateMedia:Success", "media_id", id, "type", media.Type)
	return media, nil
}

func (s *MediaService) DeactivateMedia(ctx context.Context, id uuid.UUID) (*entity.Media, *apperrors.AppError) {
	media, err := s.repo.Deactivate(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Media not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to deactivate media")
	}
	return media, nil
}

// DeleteMedia removes the row, then hands the stored object to the cleanup
// worker. The delete succeeds even when enqueueing fails; the orphan is
// logged for manual removal.
func (s *MediaService) DeleteMedia(ctx context.Context, id uuid.UUID) *apperrors.AppError {
	media, err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewAppError(apperrors.ErrNotFound, "Media not found", err)
	}
	if err != nil {
		return apperrors.TranslateStoreError(err, "Failed to delete media")
	}

	s.enqueueCleanup(media.FileKey)
	logger.Info("MediaService:DeleteMedia:Success", "media_id", id, "file_key", media.FileKey)
	return nil
}

func (s *MediaService) MediaStats(ctx context.Context) (entity.MediaStats, *apperrors.AppError) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return entity.MediaStats{}, apperrors.TranslateStoreError(err, "Failed to count media")
	}
	return stats, nil
}

func (s *MediaService) enqueueCleanup(fileKey string) {
	if s.tasks == nil || fileKey == "" {
		return
	}
	task, err := tasks.NewMediaCleanupTask(fileKey)
	if err != nil {
		logger.Error("MediaService:EnqueueCleanup:Build:Error", "error", err, "file_key", fileKey)
		return
	}
	if _, err := s.tasks.Enqueue(task); err != nil {
		logger.Error("MediaService:EnqueueCleanup:Error", "error", err, "file_key", fileKey)
	}
}

// objectKey derives a stable, URL-safe object key: "videos/summer-gala-x1Y2z3Q.mp4".
func objectKey(mediaType entity.MediaType, title, fileName string) string {
	base := slug.Make(title)
	if base == "" {
		base = "file"
	}
	return string(mediaType) + "s/" + base + "-" + utils.GenerateID() + strings.ToLower(filepath.Ext(fileName))
}

func mimeAllowed(mediaType entity.MediaType, mimeType string) bool {
	allowed := constants.AllowedImageMimeTypes
	if mediaType == entity.MediaTypeVideo {
		allowed = constants.AllowedVideoMimeTypes
	}
	for _, m := range allowed {
		if strings.EqualFold(m, mimeType) {
			return true
		}
	}
	return false
}
