package event

import (
	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/event/controller"
	"event-rsvp-api/modules/event/repository"
	"event-rsvp-api/modules/event/router"
	"event-rsvp-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module. labels comes from the settings module so
// invite descriptions pick up the configured site texts.
func Init(g *echo.Group, db database.Database, c cache.Cache, mw *middleware.Middleware, labels service.InviteLabelProvider) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, c, labels)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(g, mw)

	return svc
}
