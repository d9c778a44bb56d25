package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/params"
	"event-rsvp-api/core/utils"
	"event-rsvp-api/modules/event/dto"
	"event-rsvp-api/modules/event/entity"
	"event-rsvp-api/modules/event/repository"

	"github.com/google/uuid"
)

// InviteLabelProvider supplies the site-settings strings used in invite
// descriptions. The settings module implements it.
type InviteLabelProvider interface {
	InviteLabels(ctx context.Context) DescriptionLabels
}

type EventService struct {
	repo   repository.EventRepository
	cache  cache.Cache
	labels InviteLabelProvider

	// now is swappable so calendar URLs are reproducible in tests.
	now func() time.Time
}

func NewEventService(repo repository.EventRepository, c cache.Cache, labels InviteLabelProvider) *EventService {
	return &EventService{
		repo:   repo,
		cache:  c,
		labels: labels,
		now:    time.Now,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, createdBy *uuid.UUID) (*entity.Event, *apperrors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Title is required.", nil)
	}

	date, ok := parseEventDate(req.Date, s.now())
	if !ok {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Date is required and must be a valid date.", nil)
	}

	var endDate *time.Time
	if strings.TrimSpace(req.EndDate) != "" {
		end, ok := parseEventDate(req.EndDate, s.now())
		if !ok {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "End date must be a valid date.", nil)
		}
		endDate = &end
	}

	animationDuration := 3000
	if req.AnimationDuration != nil && *req.AnimationDuration > 0 {
		animationDuration = *req.AnimationDuration
	}

	event := &entity.Event{
		Title:             title,
		Date:              date,
		EndDate:           endDate,
		DressCode:         strings.TrimSpace(req.DressCode),
		Address:           strings.TrimSpace(req.Address),
		GuestInfo:         strings.TrimSpace(req.GuestInfo),
		Agenda:            buildAgenda(req.Agenda),
		IsActive:          req.IsActive != nil && *req.IsActive,
		ShowOnHomepage:    req.ShowOnHomepage == nil || *req.ShowOnHomepage,
		VideoURL:          strings.TrimSpace(req.VideoURL),
		AnimationDuration: animationDuration,
		CreatedBy:         createdBy,
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to create event")
	}

	if event.IsActive {
		// Creating an active event supersedes any previous one.
		if _, appErr := s.SetEventActive(ctx, event.ID, true); appErr != nil {
			return nil, appErr
		}
	}

	s.invalidateActiveEvent(ctx)
	logger.Info("EventService:CreateEvent:Success", "event_id", event.ID, "title", event.Title)
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, qp *params.QueryParams, isActive *bool) (*entity.PaginatedEventEntity, *apperrors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	page, err := s.repo.List(ctx, qp, isActive)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to list events")
	}
	return page, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, *apperrors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Event not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to fetch event")
	}
	return event, nil
}

// GetActiveEvent serves the landing page and is cached; a cache failure is
// logged and falls through to the database.
func (s *EventService) GetActiveEvent(ctx context.Context) (*entity.Event, *apperrors.AppError) {
	if s.cache != nil {
		if raw, found, err := s.cache.Get(ctx, constants.RedisKeyActiveEvent); err != nil {
			logger.Warn("EventService:GetActiveEvent:CacheGet:Error", "error", err)
		} else if found {
			var event entity.Event
			if err := json.Unmarshal([]byte(raw), &event); err != nil {
				logger.Warn("EventService:GetActiveEvent:CacheDecode:Error", "error", err)
			} else {
				return &event, nil
			}
		}
	}

	event, err := s.repo.GetActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "No active event", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to fetch active event")
	}

	if s.cache != nil {
		if raw, err := json.Marshal(event); err == nil {
			if err := s.cache.Set(ctx, constants.RedisKeyActiveEvent, string(raw), constants.ActiveEventCacheTTL); err != nil {
				logger.Warn("EventService:GetActiveEvent:CacheSet:Error", "error", err)
			}
		}
	}
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*entity.Event, *apperrors.AppError) {
	event, appErr := s.GetEventByID(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Title cannot be empty.", nil)
		}
		event.Title = title
	}
	if req.Date != nil {
		date, ok := parseEventDate(*req.Date, s.now())
		if !ok {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Date must be a valid date.", nil)
		}
		event.Date = date
	}
	if req.EndDate != nil {
		if strings.TrimSpace(*req.EndDate) == "" {
			event.EndDate = nil
		} else {
			end, ok := parseEventDate(*req.EndDate, s.now())
			if !ok {
				return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "End date must be a valid date.", nil)
			}
			event.EndDate = &end
		}
	}
	if req.DressCode != nil {
		event.DressCode = strings.TrimSpace(*req.DressCode)
	}
	if req.Address != nil {
		event.Address = strings.TrimSpace(*req.Address)
	}
	if req.GuestInfo != nil {
		event.GuestInfo = strings.TrimSpace(*req.GuestInfo)
	}
	if req.Agenda != nil {
		event.Agenda = buildAgenda(*req.Agenda)
	}
	if req.ShowOnHomepage != nil {
		event.ShowOnHomepage = *req.ShowOnHomepage
	}
	if req.VideoURL != nil {
		event.VideoURL = strings.TrimSpace(*req.VideoURL)
	}
	if req.AnimationDuration != nil && *req.AnimationDuration > 0 {
		event.AnimationDuration = *req.AnimationDuration
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Event not found", err)
		}
		return nil, apperrors.TranslateStoreError(err, "Failed to update event")
	}

	// Activation goes through SetActive so the single-active rule holds.
	if req.IsActive != nil && *req.IsActive != event.IsActive {
		return s.SetEventActive(ctx, id, *req.IsActive)
	}

	s.invalidateActiveEvent(ctx)
	logger.Info("EventService:UpdateEvent:Success", "event_id", event.ID)
	return event, nil
}

// AddAgendaItem appends one entry to the event program.
func (s *EventService) AddAgendaItem(ctx context.Context, eventID uuid.UUID, req *dto.AgendaItemRequest) (*entity.Event, *apperrors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Agenda item title is required.", nil)
	}

	event, appErr := s.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	agenda := append(event.Agenda, entity.AgendaItem{
		ID:       utils.GenerateID(),
		Time:     strings.TrimSpace(req.Time),
		Title:    title,
		Subtitle: strings.TrimSpace(req.Subtitle),
	})
	return s.persistAgenda(ctx, eventID, agenda)
}

// UpdateAgendaItem replaces the fields of one entry, found by its id.
func (s *EventService) UpdateAgendaItem(ctx context.Context, eventID uuid.UUID, itemID string, req *dto.AgendaItemRequest) (*entity.Event, *apperrors.AppError) {
	event, appErr := s.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	agenda := event.Agenda
	found := false
	for i := range agenda {
		if agenda[i].ID != itemID {
			continue
		}
		found = true
		if title := strings.TrimSpace(req.Title); title != "" {
			agenda[i].Title = title
		}
		agenda[i].Time = strings.TrimSpace(req.Time)
		agenda[i].Subtitle = strings.TrimSpace(req.Subtitle)
	}
	if !found {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Agenda item not found", nil)
	}
	return s.persistAgenda(ctx, eventID, agenda)
}

// DeleteAgendaItem removes one entry by its id.
func (s *EventService) DeleteAgendaItem(ctx context.Context, eventID uuid.UUID, itemID string) (*entity.Event, *apperrors.AppError) {
	event, appErr := s.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	agenda := make(entity.AgendaItems, 0, len(event.Agenda))
	for _, item := range event.Agenda {
		if item.ID != itemID {
			agenda = append(agenda, item)
		}
	}
	if len(agenda) == len(event.Agenda) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Agenda item not found", nil)
	}
	return s.persistAgenda(ctx, eventID, agenda)
}

func (s *EventService) persistAgenda(ctx context.Context, eventID uuid.UUID, agenda entity.AgendaItems) (*entity.Event, *apperrors.AppError) {
	event, err := s.repo.UpdateAgenda(ctx, eventID, agenda)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Event not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to update agenda")
	}

	s.invalidateActiveEvent(ctx)
	return event, nil
}

func (s *EventService) SetEventActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Event, *apperrors.AppError) {
	event, err := s.repo.SetActive(ctx, id, active)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Event not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to change event state")
	}

	s.invalidateActiveEvent(ctx)
	logger.Info("EventService:SetEventActive:Success", "event_id", id, "active", active)
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) *apperrors.AppError {
	err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewAppError(apperrors.ErrNotFound, "Event not found", err)
	}
	if err != nil {
		return apperrors.TranslateStoreError(err, "Failed to delete event")
	}

	s.invalidateActiveEvent(ctx)
	logger.Info("EventService:DeleteEvent:Success", "event_id", id)
	return nil
}

func (s *EventService) EventStats(ctx context.Context) (entity.EventStats, *apperrors.AppError) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return entity.EventStats{}, apperrors.TranslateStoreError(err, "Failed to count events")
	}
	return stats, nil
}

// CalendarURLForEvent builds the add-to-calendar link for one event.
func (s *EventService) CalendarURLForEvent(ctx context.Context, id uuid.UUID) (string, *apperrors.AppError) {
	event, appErr := s.GetEventByID(ctx, id)
	if appErr != nil {
		return "", appErr
	}
	return s.calendarURL(ctx, event), nil
}

// CalendarURLForActiveEvent is the public variant used by the RSVP page.
func (s *EventService) CalendarURLForActiveEvent(ctx context.Context) (string, *apperrors.AppError) {
	event, appErr := s.GetActiveEvent(ctx)
	if appErr != nil {
		return "", appErr
	}
	return s.calendarURL(ctx, event), nil
}

func (s *EventService) calendarURL(ctx context.Context, event *entity.Event) string {
	var labels DescriptionLabels
	if s.labels != nil {
		labels = s.labels.InviteLabels(ctx)
	}

	dateLine := event.Date.Format("January 2, 2006, 15:04")
	description := BuildEventDescription(
		event.Title, dateLine, event.DressCode, event.Address, event.GuestInfo,
		event.Agenda, labels,
	)

	start := event.Date
	return BuildCalendarURL(CalendarLinkOptions{
		Title:       event.Title,
		StartDate:   &start,
		EndDate:     event.EndDate,
		Location:    event.Address,
		Description: description,
		Now:         s.now(),
	})
}

func (s *EventService) invalidateActiveEvent(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, constants.RedisKeyActiveEvent); err != nil {
		logger.Warn("EventService:InvalidateActiveEvent:Error", "error", err)
	}
}

// parseEventDate accepts the same inputs the calendar builder does,
// including the loose "June 18, 20:00" form.
func parseEventDate(text string, now time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range standardLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return parseLooseDate(text, now)
}

func buildAgenda(items []dto.AgendaItemRequest) entity.AgendaItems {
	agenda := make(entity.AgendaItems, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		agenda = append(agenda, entity.AgendaItem{
			ID:       utils.GenerateID(),
			Time:     strings.TrimSpace(item.Time),
			Title:    title,
			Subtitle: strings.TrimSpace(item.Subtitle),
		})
	}
	return agenda
}
