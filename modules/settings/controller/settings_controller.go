package controller

import (
	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/settings/dto"
	"event-rsvp-api/modules/settings/mapper"
	"event-rsvp-api/modules/settings/service"

	"github.com/labstack/echo/v4"
)

type SettingsController struct {
	controller.BaseController
	service *service.SettingsService
}

func NewSettingsController(service *service.SettingsService) *SettingsController {
	return &SettingsController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// GetSettings serves the public landing-page configuration.
// @Summary Get site settings
// @Tags settings
// @Produce json
// @Success 200 {object} controller.SuccessResponse{data=dto.SettingsResponse}
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx echo.Context) error {
	settings, appErr := c.service.GetSettings(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToSettingsResponse(settings), "Settings retrieved")
}

// UpdateSettings applies a partial update to the site settings.
// @Summary Update site settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} controller.SuccessResponse{data=dto.SettingsResponse}
// @Router /settings [patch]
func (c *SettingsController) UpdateSettings(ctx echo.Context) error {
	req := new(dto.UpdateSettingsRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("SettingsController:UpdateSettings:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	settings, appErr := c.service.UpdateSettings(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToSettingsResponse(settings), "Settings updated")
}

// ResetSettings restores every setting to its default value.
func (c *SettingsController) ResetSettings(ctx echo.Context) error {
	settings, appErr := c.service.ResetSettings(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToSettingsResponse(settings), "Settings reset")
}
