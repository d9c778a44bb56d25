package constants

import "time"

// Database pool settings.
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Default timeout applied by services to storage calls.
const DefaultTimeout = 10 * time.Second

// Redis key prefixes.
const (
	RedisKeyTokenBlacklist = "auth:blacklist:"
	RedisKeyLoginAttempts  = "auth:login-attempts:"
	RedisKeySettings       = "settings:site"
	RedisKeyActiveEvent    = "event:active"
)

// Login throttling.
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Token scopes.
const (
	ScopeTokenAccess  = "access"
	ScopeTokenRefresh = "refresh"
)

// Cached read TTLs. Settings and the active event change rarely and are
// invalidated on write, the TTL only bounds staleness after a missed
// invalidation.
const (
	SettingsCacheTTL    = 1 * time.Hour
	ActiveEventCacheTTL = 5 * time.Minute
)

// Allowed upload MIME types per media type.
var (
	AllowedVideoMimeTypes = []string{
		"video/mp4", "video/mpeg", "video/quicktime", "video/x-msvideo", "video/webm",
	}
	AllowedImageMimeTypes = []string{
		"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp",
	}
)

// Upload size ceiling for media files.
const MaxUploadSizeBytes = 200 << 20
