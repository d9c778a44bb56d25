package tasks

import (
	"context"
	"encoding/json"

	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/storage"

	"github.com/hibiken/asynq"
)

// TypeMediaCleanup removes an orphaned object from the store after its
// database row is gone. Run asynchronously so a slow or flaky store never
// delays the admin's delete request.
const TypeMediaCleanup = "media:cleanup"

type MediaCleanupPayload struct {
	FileKey string `json:"file_key"`
}

func NewMediaCleanupTask(fileKey string) (*asynq.Task, error) {
	payload, err := json.Marshal(MediaCleanupPayload{FileKey: fileKey})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMediaCleanup, payload, asynq.MaxRetry(5)), nil
}

// CleanupHandler deletes the object named in the task payload.
type CleanupHandler struct {
	store storage.ObjectStore
}

func NewCleanupHandler(store storage.ObjectStore) *CleanupHandler {
	return &CleanupHandler{store: store}
}

func (h *CleanupHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload MediaCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Error("MediaCleanup:Payload:Error", "error", err)
		// A malformed payload will never succeed; do not retry.
		return nil
	}
	if payload.FileKey == "" {
		return nil
	}

	if err := h.store.Delete(ctx, payload.FileKey); err != nil {
		logger.Warn("MediaCleanup:Delete:Retry", "error", err, "file_key", payload.FileKey)
		return err
	}
	logger.Info("MediaCleanup:Delete:Success", "file_key", payload.FileKey)
	return nil
}
