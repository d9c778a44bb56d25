package router

import (
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")

	// Public landing-page reads; literal routes before "/:id".
	events.GET("/active", r.controller.GetActiveEvent)
	events.GET("/active/calendar-url", r.controller.GetActiveEventCalendarURL)

	admin := events.Group("", mw.AuthMiddleware())
	admin.POST("", r.controller.CreateEvent)
	admin.GET("", r.controller.GetEvents)
	admin.GET("/stats", r.controller.GetEventStats)
	admin.GET("/:id", r.controller.GetEventByID)
	admin.GET("/:id/calendar-url", r.controller.GetEventCalendarURL)
	admin.PUT("/:id", r.controller.UpdateEvent)
	admin.PATCH("/:id", r.controller.UpdateEvent)
	admin.POST("/:id/agenda", r.controller.AddAgendaItem)
	admin.PATCH("/:id/agenda/:itemId", r.controller.UpdateAgendaItem)
	admin.DELETE("/:id/agenda/:itemId", r.controller.DeleteAgendaItem)
	admin.POST("/:id/activate", r.controller.ActivateEvent)
	admin.POST("/:id/deactivate", r.controller.DeactivateEvent)
	admin.DELETE("/:id", r.controller.DeleteEvent)
}
