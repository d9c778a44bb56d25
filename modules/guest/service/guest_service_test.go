package service

import (
	"context"
	"strings"
	"testing"

	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/modules/guest/dto"
	"event-rsvp-api/modules/guest/entity"
	"event-rsvp-api/modules/guest/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// stubGuestRepo records calls and plays back canned results.
type stubGuestRepo struct {
	upserted   []*entity.Guest
	upsertErr  error
	listResult []entity.Guest
	listErr    error
	deletedAll int64
}

func (s *stubGuestRepo) Upsert(ctx context.Context, guest *entity.Guest) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	guest.ID = uuid.New()
	s.upserted = append(s.upserted, guest)
	return nil
}

func (s *stubGuestRepo) List(ctx context.Context, opts entity.ListOptions) ([]entity.Guest, error) {
	return s.listResult, s.listErr
}

func (s *stubGuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return nil, repository.ErrNotFound
}

func (s *stubGuestRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return repository.ErrNotFound
}

func (s *stubGuestRepo) DeleteAll(ctx context.Context) (int64, error) {
	return s.deletedAll, nil
}

func (s *stubGuestRepo) Counts(ctx context.Context) (entity.GuestCounts, error) {
	return entity.GuestCounts{}, nil
}

func TestRegisterGuestRequiresNameEmailPhone(t *testing.T) {
	svc := NewGuestService(&stubGuestRepo{})

	cases := []dto.RegisterGuestRequest{
		{Name: "", Email: "a@x.com", Phone: "123"},
		{Name: "Ann", Email: "", Phone: "123"},
		{Name: "Ann", Email: "a@x.com", Phone: ""},
		{Name: "   ", Email: "  ", Phone: "\t"},
	}
	for _, req := range cases {
		_, appErr := svc.RegisterGuest(context.Background(), &req)
		if appErr == nil {
			t.Fatalf("expected error for %+v", req)
		}
		if appErr.Code != apperrors.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", appErr.Code)
		}
	}
}

func TestRegisterGuestNormalizesContactFields(t *testing.T) {
	repo := &stubGuestRepo{}
	svc := NewGuestService(repo)

	guest, appErr := svc.RegisterGuest(context.Background(), &dto.RegisterGuestRequest{
		Name:  "  Ann Lee  ",
		Email: "  A@X.COM ",
		Phone: " +1 555 0100 ",
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if guest.Name != "Ann Lee" {
		t.Errorf("name not trimmed: %q", guest.Name)
	}
	if guest.Email != "a@x.com" {
		t.Errorf("email not normalized: %q", guest.Email)
	}
	if guest.Phone != "+1 555 0100" {
		t.Errorf("phone not trimmed: %q", guest.Phone)
	}
	if !guest.Going {
		t.Error("going should default to true")
	}
}

func TestRegisterGuestGoingFalseIsKept(t *testing.T) {
	svc := NewGuestService(&stubGuestRepo{})

	going := false
	guest, appErr := svc.RegisterGuest(context.Background(), &dto.RegisterGuestRequest{
		Name: "Ann", Email: "a@x.com", Phone: "123", Going: &going,
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if guest.Going {
		t.Error("explicit going=false was overridden")
	}
}

func TestRegisterGuestTranslatesUniqueViolation(t *testing.T) {
	repo := &stubGuestRepo{
		upsertErr: &pq.Error{Code: "23505", Constraint: "idx_guests_phone"},
	}
	svc := NewGuestService(repo)

	_, appErr := svc.RegisterGuest(context.Background(), &dto.RegisterGuestRequest{
		Name: "Ann", Email: "a@x.com", Phone: "123",
	})
	if appErr == nil {
		t.Fatal("expected conflict error")
	}
	if appErr.Code != apperrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "phone") {
		t.Errorf("message should name the phone field: %q", appErr.Message)
	}
}

func TestDeleteAllGuestsReportsCount(t *testing.T) {
	svc := NewGuestService(&stubGuestRepo{deletedAll: 42})

	count, appErr := svc.DeleteAllGuests(context.Background())
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if count != 42 {
		t.Errorf("expected 42, got %d", count)
	}
}

func TestExportGuestsCSVLayout(t *testing.T) {
	repo := &stubGuestRepo{
		listResult: []entity.Guest{
			{Name: "Ann", Email: "a@x.com", Phone: "123", Company: "Acme", Position: "CTO", Going: true},
			{Name: "Bob", Email: "b@x.com", Phone: "456", Going: false},
		},
	}
	svc := NewGuestService(repo)

	data, filename, appErr := svc.ExportGuests(context.Background(), entity.ListOptions{})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !strings.HasPrefix(filename, "guests-") || !strings.HasSuffix(filename, ".csv") {
		t.Errorf("unexpected filename: %q", filename)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Name,Phone,Email,Company,Position,Going,Created At" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], ",YES,") {
		t.Errorf("going guest should render YES: %q", lines[1])
	}
	if !strings.Contains(lines[2], ",NO,") {
		t.Errorf("declining guest should render NO: %q", lines[2])
	}
}
