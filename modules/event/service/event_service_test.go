package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"event-rsvp-api/core/params"
	"event-rsvp-api/modules/event/dto"
	"event-rsvp-api/modules/event/entity"
	"event-rsvp-api/modules/event/repository"

	"github.com/google/uuid"
)

type stubEventRepo struct {
	byID   map[uuid.UUID]*entity.Event
	active *entity.Event
}

func (s *stubEventRepo) Create(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	return nil
}

func (s *stubEventRepo) List(ctx context.Context, qp *params.QueryParams, isActive *bool) (*entity.PaginatedEventEntity, error) {
	return &entity.PaginatedEventEntity{Items: []entity.Event{}}, nil
}

func (s *stubEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	if e, ok := s.byID[id]; ok {
		out := *e
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubEventRepo) GetActive(ctx context.Context) (*entity.Event, error) {
	if s.active == nil {
		return nil, repository.ErrNotFound
	}
	out := *s.active
	return &out, nil
}

func (s *stubEventRepo) Update(ctx context.Context, event *entity.Event) error { return nil }

func (s *stubEventRepo) UpdateAgenda(ctx context.Context, id uuid.UUID, agenda entity.AgendaItems) (*entity.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *e
	out.Agenda = agenda
	s.byID[id] = &out
	return &out, nil
}

func (s *stubEventRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *e
	out.IsActive = active
	return &out, nil
}

func (s *stubEventRepo) DeleteByID(ctx context.Context, id uuid.UUID) error { return nil }

func (s *stubEventRepo) Stats(ctx context.Context) (entity.EventStats, error) {
	return entity.EventStats{}, nil
}

type fixedLabels struct{}

func (fixedLabels) InviteLabels(ctx context.Context) DescriptionLabels {
	return DescriptionLabels{Heading: "SAVE THE DATE"}
}

func TestParseEventDateAcceptsStandardAndLooseForms(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	dt, ok := parseEventDate("2024-06-18 20:00", now)
	if !ok || dt.Month() != time.June || dt.Hour() != 20 {
		t.Errorf("standard form failed: %v %v", dt, ok)
	}

	// Minute precision with a T separator is what datetime-local inputs
	// submit; it must parse as-is.
	dt, ok = parseEventDate("2024-06-18T20:00", now)
	if !ok || dt.Day() != 18 || dt.Hour() != 20 || dt.Minute() != 0 {
		t.Errorf("datetime-local form failed: %v %v", dt, ok)
	}

	dt, ok = parseEventDate("June 18, 20:00", now)
	if !ok || dt.Day() != 18 {
		t.Errorf("loose form failed: %v %v", dt, ok)
	}

	if _, ok := parseEventDate("", now); ok {
		t.Error("empty input must not parse")
	}
	if _, ok := parseEventDate("gibberish", now); ok {
		t.Error("garbage input must not parse")
	}
}

func TestCalendarURLForActiveEvent(t *testing.T) {
	date := time.Date(2024, 6, 18, 20, 0, 0, 0, time.UTC)
	repo := &stubEventRepo{active: &entity.Event{
		Title:     "Summer Gala",
		Date:      date,
		DressCode: "Black tie",
		Address:   "1 Main St",
		IsActive:  true,
	}}
	svc := NewEventService(repo, nil, fixedLabels{})
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	url, appErr := svc.CalendarURLForActiveEvent(context.Background())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !strings.Contains(url, "dates=20240618T200000Z%2F20240619T000000Z") {
		t.Errorf("start/end missing or wrong: %s", url)
	}
	if !strings.Contains(url, "text=Summer+Gala") {
		t.Errorf("title missing: %s", url)
	}
	if !strings.Contains(url, "SAVE+THE+DATE") {
		t.Errorf("settings heading missing from description: %s", url)
	}

	again, _ := svc.CalendarURLForActiveEvent(context.Background())
	if url != again {
		t.Error("URL should be deterministic for a fixed clock")
	}
}

func TestCalendarURLForMissingActiveEvent(t *testing.T) {
	svc := NewEventService(&stubEventRepo{}, nil, nil)

	if _, appErr := svc.CalendarURLForActiveEvent(context.Background()); appErr == nil {
		t.Fatal("expected not-found error")
	}
}

func TestAgendaItemLifecycle(t *testing.T) {
	id := uuid.New()
	repo := &stubEventRepo{byID: map[uuid.UUID]*entity.Event{}}
	repo.byID[id] = &entity.Event{Title: "Gala"}
	repo.byID[id].ID = id

	svc := NewEventService(repo, nil, nil)

	event, appErr := svc.AddAgendaItem(context.Background(), id, &dto.AgendaItemRequest{Time: "20:00", Title: "Doors open"})
	if appErr != nil {
		t.Fatalf("add: %v", appErr)
	}
	if len(event.Agenda) != 1 || event.Agenda[0].ID == "" {
		t.Fatalf("add result: %+v", event.Agenda)
	}
	itemID := event.Agenda[0].ID

	event, appErr = svc.UpdateAgendaItem(context.Background(), id, itemID, &dto.AgendaItemRequest{Time: "20:30", Title: "Doors open"})
	if appErr != nil {
		t.Fatalf("update: %v", appErr)
	}
	if event.Agenda[0].Time != "20:30" {
		t.Errorf("update did not stick: %+v", event.Agenda[0])
	}

	if _, appErr = svc.UpdateAgendaItem(context.Background(), id, "missing", &dto.AgendaItemRequest{Title: "x"}); appErr == nil {
		t.Error("updating an unknown item should fail")
	}

	event, appErr = svc.DeleteAgendaItem(context.Background(), id, itemID)
	if appErr != nil {
		t.Fatalf("delete: %v", appErr)
	}
	if len(event.Agenda) != 0 {
		t.Errorf("delete left items behind: %+v", event.Agenda)
	}
}

func TestBuildAgendaSkipsUntitledItemsAndAssignsIDs(t *testing.T) {
	agenda := buildAgenda([]dto.AgendaItemRequest{
		{Time: "20:00", Title: "  Doors open  "},
		{Time: "20:30", Title: "   "},
		{Time: "21:00", Title: "Dinner", Subtitle: " main hall "},
	})

	if len(agenda) != 2 {
		t.Fatalf("untitled items should be dropped, got %d", len(agenda))
	}
	if agenda[0].Title != "Doors open" || agenda[1].Subtitle != "main hall" {
		t.Errorf("fields not trimmed: %+v", agenda)
	}
	if agenda[0].ID == "" || agenda[1].ID == "" || agenda[0].ID == agenda[1].ID {
		t.Errorf("agenda items need distinct ids: %+v", agenda)
	}
}
