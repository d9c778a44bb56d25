package router

import (
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/guest/controller"

	"github.com/labstack/echo/v4"
)

type GuestRouter struct {
	controller *controller.GuestController
}

func NewGuestRouter(controller *controller.GuestController) *GuestRouter {
	return &GuestRouter{controller: controller}
}

func (r *GuestRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	guests := g.Group("/guests")

	// Public RSVP submission; everything else is admin-only.
	guests.POST("", r.controller.RegisterGuest)

	admin := guests.Group("", mw.AuthMiddleware())
	admin.GET("", r.controller.GetGuests)
	admin.GET("/stats", r.controller.GetGuestStats)
	admin.GET("/export", r.controller.ExportGuests)
	// "/all" before "/:id" so the literal route wins.
	admin.DELETE("/all", r.controller.DeleteAllGuests)
	admin.GET("/:id", r.controller.GetGuestByID)
	admin.DELETE("/:id", r.controller.DeleteGuest)
}
