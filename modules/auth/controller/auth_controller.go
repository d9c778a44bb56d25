package controller

import (
	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/utils"
	"event-rsvp-api/modules/auth/dto"
	"event-rsvp-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service *service.AuthService
}

func NewAuthController(service *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// Login exchanges admin credentials for a token pair.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "credentials"
// @Success 200 {object} controller.SuccessResponse{data=dto.TokenPairResponse}
// @Failure 401 {object} controller.ErrorResponse
// @Failure 429 {object} controller.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("AuthController:Login:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	pair, appErr := c.service.Login(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, pair, "Logged in")
}

// Refresh rotates a refresh token into a new pair.
func (c *AuthController) Refresh(ctx echo.Context) error {
	req := new(dto.RefreshRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	pair, appErr := c.service.Refresh(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, pair, "Token refreshed")
}

// Logout revokes the current access token.
func (c *AuthController) Logout(ctx echo.Context) error {
	claims, _ := ctx.Get("token_data").(*utils.TokenClaims)
	raw, _ := ctx.Get("token_raw").(string)
	if claims == nil || raw == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	if appErr := c.service.Logout(ctx.Request().Context(), raw, claims); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out")
}

// Me returns the authenticated account.
func (c *AuthController) Me(ctx echo.Context) error {
	claims, _ := ctx.Get("token_data").(*utils.TokenClaims)
	if claims == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Not authenticated")
	}

	user, appErr := c.service.Me(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.MeResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, "Account retrieved")
}
