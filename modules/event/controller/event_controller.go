package controller

import (
	"event-rsvp-api/core/controller"
	"event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/params"
	"event-rsvp-api/core/utils"
	"event-rsvp-api/modules/event/dto"
	"event-rsvp-api/modules/event/mapper"
	"event-rsvp-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service *service.EventService
}

func NewEventController(service *service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// CreateEvent creates a new event owned by the authenticated admin.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateEventRequest true "Event"
// @Success 201 {object} controller.SuccessResponse{data=dto.EventResponse}
// @Failure 400 {object} controller.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	req := new(dto.CreateEventRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("EventController:CreateEvent:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	var createdBy *uuid.UUID
	if claims, ok := ctx.Get("token_data").(*utils.TokenClaims); ok && claims != nil {
		createdBy = &claims.UserID
	}

	event, appErr := c.service.CreateEvent(ctx.Request().Context(), req, createdBy)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, mapper.ToEventResponse(event), "Event created")
}

// GetEvents lists events with pagination and an optional is_active filter.
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Param search query string false "substring match over title/address"
// @Param is_active query bool false "filter by active flag"
// @Success 200 {object} controller.SuccessResponse{data=dto.PaginatedEventResponse}
// @Router /events [get]
func (c *EventController) GetEvents(ctx echo.Context) error {
	qp := params.FromEchoContext(ctx)

	var isActive *bool
	switch ctx.QueryParam("is_active") {
	case "true":
		v := true
		isActive = &v
	case "false":
		v := false
		isActive = &v
	}

	page, appErr := c.service.ListEvents(ctx.Request().Context(), &qp, isActive)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToPaginatedEventResponse(page), "Events retrieved")
}

// GetActiveEvent serves the landing page; no authentication required.
// @Summary Get the active event
// @Tags events
// @Produce json
// @Success 200 {object} controller.SuccessResponse{data=dto.EventResponse}
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/active [get]
func (c *EventController) GetActiveEvent(ctx echo.Context) error {
	event, appErr := c.service.GetActiveEvent(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), "Active event retrieved")
}

// GetActiveEventCalendarURL returns the add-to-calendar link for the active
// event. Public, used by the RSVP confirmation screen.
// @Summary Calendar link for the active event
// @Tags events
// @Produce json
// @Success 200 {object} controller.SuccessResponse{data=dto.CalendarURLResponse}
// @Router /events/active/calendar-url [get]
func (c *EventController) GetActiveEventCalendarURL(ctx echo.Context) error {
	url, appErr := c.service.CalendarURLForActiveEvent(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.CalendarURLResponse{URL: url}, "Calendar URL generated")
}

func (c *EventController) GetEventByID(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	event, appErr := c.service.GetEventByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), "Event retrieved")
}

// GetEventCalendarURL returns the add-to-calendar link for one event.
func (c *EventController) GetEventCalendarURL(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	url, appErr := c.service.CalendarURLForEvent(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.CalendarURLResponse{URL: url}, "Calendar URL generated")
}

func (c *EventController) UpdateEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	req := new(dto.UpdateEventRequest)
	if err := ctx.Bind(req); err != nil {
		logger.Warn("EventController:UpdateEvent:Bind:Error", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	event, appErr := c.service.UpdateEvent(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), "Event updated")
}

// AddAgendaItem appends one program entry to the event.
func (c *EventController) AddAgendaItem(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	req := new(dto.AgendaItemRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	event, appErr := c.service.AddAgendaItem(ctx.Request().Context(), id, req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, mapper.ToEventResponse(event), "Agenda item added")
}

func (c *EventController) UpdateAgendaItem(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	req := new(dto.AgendaItemRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	event, appErr := c.service.UpdateAgendaItem(ctx.Request().Context(), id, ctx.Param("itemId"), req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), "Agenda item updated")
}

func (c *EventController) DeleteAgendaItem(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	event, appErr := c.service.DeleteAgendaItem(ctx.Request().Context(), id, ctx.Param("itemId"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), "Agenda item removed")
}

// ActivateEvent flips an event to active, deactivating any other.
func (c *EventController) ActivateEvent(ctx echo.Context) error {
	return c.setActive(ctx, true)
}

func (c *EventController) DeactivateEvent(ctx echo.Context) error {
	return c.setActive(ctx, false)
}

func (c *EventController) setActive(ctx echo.Context, active bool) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}

	event, appErr := c.service.SetEventActive(ctx.Request().Context(), id, active)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	msg := "Event deactivated"
	if active {
		msg = "Event activated"
	}
	return c.SuccessResponse(ctx, mapper.ToEventResponse(event), msg)
}

func (c *EventController) DeleteEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid event ID")
	}
	if appErr := c.service.DeleteEvent(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event deleted")
}

// GetEventStats returns total/active/inactive counts for the admin header.
func (c *EventController) GetEventStats(ctx echo.Context) error {
	stats, appErr := c.service.EventStats(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.EventStatsResponse{
		TotalEvents:    stats.TotalEvents,
		ActiveEvents:   stats.ActiveEvents,
		InactiveEvents: stats.InactiveEvents,
	}, "Event stats retrieved")
}
