package auth

import (
	"context"

	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/middleware"
	"event-rsvp-api/modules/auth/controller"
	"event-rsvp-api/modules/auth/repository"
	"event-rsvp-api/modules/auth/router"
	"event-rsvp-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module, seeds the admin account and returns the
// service; the shared middleware uses it as its token checker.
func Init(g *echo.Group, db database.Database, c cache.Cache, mw *middleware.Middleware) *service.AuthService {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, c)

	if err := svc.SeedAdmin(context.Background()); err != nil {
		logger.Error("Auth:Init:SeedAdmin:Error", "error", err)
	}

	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Register(g, mw)

	return svc
}
