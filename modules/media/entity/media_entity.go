package entity

import (
	"event-rsvp-api/core/entity"
)

type MediaType string

const (
	MediaTypeVideo MediaType = "video"
	MediaTypeImage MediaType = "image"
)

func (t MediaType) Valid() bool {
	return t == MediaTypeVideo || t == MediaTypeImage
}

type MediaStatus string

const (
	MediaStatusActive   MediaStatus = "active"
	MediaStatusInactive MediaStatus = "inactive"
)

// Media is one uploaded file in the object store. FileKey is the object
// key; FileURL is the public URL derived from it at upload time.
type Media struct {
	entity.BaseEntity
	Title       string      `db:"title" json:"title"`
	Description string      `db:"description" json:"description"`
	Type        MediaType   `db:"type" json:"type"`
	FileName    string      `db:"file_name" json:"file_name"`
	FileKey     string      `db:"file_key" json:"file_key"`
	FileURL     string      `db:"file_url" json:"file_url"`
	FileSize    int64       `db:"file_size" json:"file_size"`
	MimeType    string      `db:"mime_type" json:"mime_type"`
	Duration    *float64    `db:"duration" json:"duration"`
	Thumbnail   *string     `db:"thumbnail" json:"thumbnail"`
	Status      MediaStatus `db:"status" json:"status"`
}

type PaginatedMediaEntity = entity.Pagination[Media]

type MediaStats struct {
	TotalMedia  int   `db:"total_media" json:"totalMedia"`
	TotalVideos int   `db:"total_videos" json:"totalVideos"`
	TotalImages int   `db:"total_images" json:"totalImages"`
	ActiveMedia int   `db:"active_media" json:"activeMedia"`
	TotalBytes  int64 `db:"total_bytes" json:"totalBytes"`
}
