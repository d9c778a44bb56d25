package dto

import (
	"time"

	coredto "event-rsvp-api/core/dto"

	"github.com/google/uuid"
)

// UploadMediaRequest carries the form fields accompanying the file part.
type UploadMediaRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Type        string `form:"type"`
}

type UpdateMediaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type MediaResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	FileSize    int64     `json:"file_size"`
	MimeType    string    `json:"mime_type"`
	Duration    *float64  `json:"duration"`
	Thumbnail   *string   `json:"thumbnail"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PaginatedMediaResponse = coredto.Pagination[MediaResponse]

type MediaStatsResponse struct {
	TotalMedia  int   `json:"totalMedia"`
	TotalVideos int   `json:"totalVideos"`
	TotalImages int   `json:"totalImages"`
	ActiveMedia int   `json:"activeMedia"`
	TotalBytes  int64 `json:"totalBytes"`
}
