package middleware

import (
	"context"
	"strings"

	"event-rsvp-api/core/constants"
	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenChecker is the slice of the auth service the middleware needs.
type TokenChecker interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type Middleware struct {
	tokens TokenChecker
}

func NewMiddleware(tokens TokenChecker) *Middleware {
	return &Middleware{tokens: tokens}
}

// AuthMiddleware validates the Bearer token and stores the claims under
// "token_data" for controllers.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return controller.NewErrorResponse(401, errors.ErrMissingAuthorizationHeader, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return controller.NewErrorResponse(401, errors.ErrInvalidTokenFormat, "Invalid Authorization header format")
			}
			token := parts[1]

			claims, err := utils.ParseToken(token)
			if err != nil {
				logger.Warn("Middleware:Auth:ParseToken:Error", "error", err)
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Invalid or expired token")
			}
			if claims.Scope != constants.ScopeTokenAccess {
				return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token scope not allowed")
			}

			if m.tokens != nil {
				blacklisted, err := m.tokens.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:Auth:BlacklistCheck:Error", "error", err)
					return controller.NewErrorResponse(503, errors.ErrStoreUnavailable, "Authorization backend unavailable")
				}
				if blacklisted {
					return controller.NewErrorResponse(401, errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			c.Set("token_data", claims)
			c.Set("token_raw", token)
			return next(c)
		}
	}
}
