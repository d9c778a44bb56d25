package media

import (
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/core/storage"
	"event-rsvp-api/modules/media/controller"
	"event-rsvp-api/modules/media/repository"
	"event-rsvp-api/modules/media/router"
	"event-rsvp-api/modules/media/service"
	"event-rsvp-api/modules/media/tasks"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init wires the media module. The asynq client may be nil in tests;
// object cleanup is then skipped.
func Init(g *echo.Group, db database.Database, store storage.ObjectStore, taskClient *asynq.Client, mw *middleware.Middleware) *service.MediaService {
	repo := repository.NewMediaRepository(db)
	svc := service.NewMediaService(repo, store, taskClient)
	ctrl := controller.NewMediaController(svc)

	router.NewMediaRouter(ctrl).Register(g, mw)

	return svc
}

// RegisterTasks attaches the module's background handlers to the worker mux.
func RegisterTasks(mux *asynq.ServeMux, store storage.ObjectStore) {
	mux.Handle(tasks.TypeMediaCleanup, tasks.NewCleanupHandler(store))
}
