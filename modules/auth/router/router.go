package router

import (
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := g.Group("/auth")

	auth.POST("/login", r.controller.Login)
	auth.POST("/refresh", r.controller.Refresh)

	authed := auth.Group("", mw.AuthMiddleware())
	authed.POST("/logout", r.controller.Logout)
	authed.GET("/me", r.controller.Me)
}
