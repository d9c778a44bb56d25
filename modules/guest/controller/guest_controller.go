package controller

import (
	"fmt"
	"net/http"

	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/guest/dto"
	"event-rsvp-api/modules/guest/entity"
	"event-rsvp-api/modules/guest/mapper"
	"event-rsvp-api/modules/guest/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type GuestController struct {
	controller.BaseController
	service *service.GuestService
}

func NewGuestController(service *service.GuestService) *GuestController {
	return &GuestController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// RegisterGuest handles the public RSVP submission.
// @Summary Register an RSVP
// @Tags guests
// @Accept json
// @Produce json
// @Param body body dto.RegisterGuestRequest true "RSVP submission"
// @Success 201 {object} controller.SuccessResponse{data=dto.GuestResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /guests [post]
func (c *GuestController) RegisterGuest(ctx echo.Context) error {
	req := new(dto.RegisterGuestRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("GuestController:RegisterGuest:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	guest, appErr := c.service.RegisterGuest(ctx.Request().Context(), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, mapper.ToGuestResponse(guest), "RSVP saved")
}

func listOptionsFromQuery(ctx echo.Context) entity.ListOptions {
	filter := entity.AttendanceFilter(ctx.QueryParam("filter"))
	switch filter {
	case entity.FilterGoing, entity.FilterNotGoing:
	default:
		filter = entity.FilterAll
	}
	return entity.ListOptions{
		Filter:    filter,
		Search:    ctx.QueryParam("search"),
		SortBy:    ctx.QueryParam("sort_by"),
		SortOrder: ctx.QueryParam("sort_order"),
	}
}

// GetGuests returns the full filtered/sorted guest list.
// @Summary List guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all | going | notgoing"
// @Param search query string false "substring match over name/phone/email/company/position"
// @Param sort_by query string false "created_at | name | phone | company | position"
// @Param sort_order query string false "asc | desc"
// @Success 200 {object} controller.SuccessResponse{data=dto.GuestListResponse}
// @Router /guests [get]
func (c *GuestController) GetGuests(ctx echo.Context) error {
	guests, appErr := c.service.ListGuests(ctx.Request().Context(), listOptionsFromQuery(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToGuestListResponse(guests), "Guests retrieved")
}

// GetGuestByID returns one guest record.
func (c *GuestController) GetGuestByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID")
	}

	guest, appErr := c.service.GetGuestByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToGuestResponse(guest), "Guest retrieved")
}

// GetGuestStats returns total/going/notGoing counts for the admin header.
func (c *GuestController) GetGuestStats(ctx echo.Context) error {
	counts, appErr := c.service.GuestStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.GuestStatsResponse{
		Total:    counts.Total,
		Going:    counts.Going,
		NotGoing: counts.NotGoing,
	}, "Guest stats retrieved")
}

// ExportGuests streams the filtered/sorted list as a CSV attachment.
// @Summary Export guests as CSV
// @Tags guests
// @Produce text/csv
// @Security BearerAuth
// @Router /guests/export [get]
func (c *GuestController) ExportGuests(ctx echo.Context) error {
	data, filename, appErr := c.service.ExportGuests(ctx.Request().Context(), listOptionsFromQuery(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// DeleteGuest removes one guest by id.
func (c *GuestController) DeleteGuest(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid guest ID")
	}
	if appErr := c.service.DeleteGuest(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Guest deleted")
}

// DeleteAllGuests irreversibly removes every guest record.
// @Summary Delete all guests
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controller.SuccessResponse{data=dto.DeleteAllGuestsResponse}
// @Router /guests/all [delete]
func (c *GuestController) DeleteAllGuests(ctx echo.Context) error {
	count, appErr := c.service.DeleteAllGuests(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.DeleteAllGuestsResponse{DeletedCount: count},
		fmt.Sprintf("Successfully deleted %d guests", count))
}
