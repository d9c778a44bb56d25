package router

import (
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/settings/controller"

	"github.com/labstack/echo/v4"
)

type SettingsRouter struct {
	controller *controller.SettingsController
}

func NewSettingsRouter(controller *controller.SettingsController) *SettingsRouter {
	return &SettingsRouter{controller: controller}
}

func (r *SettingsRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	settings := g.Group("/settings")

	// The landing page reads settings without authenticating.
	settings.GET("", r.controller.GetSettings)

	admin := settings.Group("", mw.AuthMiddleware())
	admin.PATCH("", r.controller.UpdateSettings)
	admin.PUT("", r.controller.UpdateSettings)
	admin.POST("/reset", r.controller.ResetSettings)
}
