package guest

import (
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/guest/controller"
	"event-rsvp-api/modules/guest/repository"
	"event-rsvp-api/modules/guest/router"
	"event-rsvp-api/modules/guest/service"

	"github.com/labstack/echo/v4"
)

// Init wires the guest module and returns the service for other modules.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.GuestService {
	repo := repository.NewGuestRepository(db)
	svc := service.NewGuestService(repo)
	ctrl := controller.NewGuestController(svc)

	router.NewGuestRouter(ctrl).Register(g, mw)

	return svc
}
