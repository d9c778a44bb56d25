package router

import (
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/media/controller"

	"github.com/labstack/echo/v4"
)

type MediaRouter struct {
	controller *controller.MediaController
}

func NewMediaRouter(controller *controller.MediaController) *MediaRouter {
	return &MediaRouter{controller: controller}
}

func (r *MediaRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	media := g.Group("/media")

	// Public read of the live background video/image.
	media.GET("/active/:type", r.controller.GetActiveMedia)

	admin := media.Group("", mw.AuthMiddleware())
	admin.POST("", r.controller.UploadMedia)
	admin.GET("", r.controller.GetMedia)
	admin.GET("/stats", r.controller.GetMediaStats)
	admin.GET("/:id", r.controller.GetMediaByID)
	admin.PATCH("/:id", r.controller.UpdateMedia)
	admin.POST("/:id/activate", r.controller.ActivateMedia)
	admin.POST("/:id/deactivate", r.controller.DeactivateMedia)
	admin.DELETE("/:id", r.controller.DeleteMedia)
}
