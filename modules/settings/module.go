package settings

import (
	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/settings/controller"
	"event-rsvp-api/modules/settings/repository"
	"event-rsvp-api/modules/settings/router"
	"event-rsvp-api/modules/settings/service"

	"github.com/labstack/echo/v4"
)

// Init wires the settings module and returns the service; the event module
// consumes it as its invite label provider.
func Init(g *echo.Group, db database.Database, c cache.Cache, mw *middleware.Middleware) *service.SettingsService {
	repo := repository.NewSettingsRepository(db)
	svc := service.NewSettingsService(repo, c)
	ctrl := controller.NewSettingsController(svc)

	router.NewSettingsRouter(ctrl).Register(g, mw)

	return svc
}
