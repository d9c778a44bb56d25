package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/guest/dto"
	"event-rsvp-api/modules/guest/entity"
	"event-rsvp-api/modules/guest/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// exportTimeFormat approximates the locale string the admin UI used to
// render; fixed here so exports are deterministic.
const exportTimeFormat = "1/2/2006, 3:04:05 PM"

var exportHeader = []string{"Name", "Phone", "Email", "Company", "Position", "Going", "Created At"}

type GuestService struct {
	repo repository.GuestRepository
}

func NewGuestService(repo repository.GuestRepository) *GuestService {
	return &GuestService{repo: repo}
}

// RegisterGuest validates and upserts an RSVP. Identity resolution is
// email OR phone: a submission matching either field overwrites that
// record in place, including the other contact field. Returns the
// persisted record.
func (s *GuestService) RegisterGuest(ctx context.Context, req *dto.RegisterGuestRequest) (*entity.Guest, *apperrors.AppError) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.ToLower(strings.TrimSpace(req.Phone))

	if name == "" || email == "" || phone == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Name, email and phone are required.", nil)
	}

	going := true
	if req.Going != nil {
		going = *req.Going
	}

	guest := &entity.Guest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Company:  strings.TrimSpace(req.Company),
		Position: strings.TrimSpace(req.Position),
		Going:    going,
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	if err := s.repo.Upsert(ctx, guest); err != nil {
		if field, ok := uniqueViolationField(err); ok {
			logger.Warn("GuestService:RegisterGuest:Conflict", "field", field, "email", email)
			return nil, apperrors.NewAppError(apperrors.ErrAlreadyExists,
				fmt.Sprintf("A guest with that %s already exists.", field), err)
		}
		return nil, apperrors.TranslateStoreError(err, "Failed to register guest")
	}

	logger.Info("GuestService:RegisterGuest:Success", "guest_id", guest.ID, "going", guest.Going)
	return guest, nil
}

func (s *GuestService) ListGuests(ctx context.Context, opts entity.ListOptions) ([]entity.Guest, *apperrors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()

	guests, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to list guests")
	}
	return guests, nil
}

func (s *GuestService) GetGuestByID(ctx context.Context, id uuid.UUID) (*entity.Guest, *apperrors.AppError) {
	guest, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Guest not found", err)
	}
	if err != nil {
		return nil, apperrors.TranslateStoreError(err, "Failed to fetch guest")
	}
	return guest, nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) *apperrors.AppError {
	err := s.repo.DeleteByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewAppError(apperrors.ErrNotFound, "Guest not found", err)
	}
	if err != nil {
		return apperrors.TranslateStoreError(err, "Failed to delete guest")
	}
	return nil
}

// DeleteAllGuests removes every record unconditionally; confirmation is a
// UI concern. Returns the number of rows removed.
func (s *GuestService) DeleteAllGuests(ctx context.Context) (int64, *apperrors.AppError) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, apperrors.TranslateStoreError(err, "Failed to delete guests")
	}
	logger.Info("GuestService:DeleteAllGuests:Success", "deleted_count", count)
	return count, nil
}

func (s *GuestService) GuestStats(ctx context.Context) (entity.GuestCounts, *apperrors.AppError) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		return entity.GuestCounts{}, apperrors.TranslateStoreError(err, "Failed to count guests")
	}
	return counts, nil
}

// ExportGuests renders the filtered/sorted set as CSV with the fixed
// column layout the admin spreadsheet expects. Pure transformation over
// the list result.
func (s *GuestService) ExportGuests(ctx context.Context, opts entity.ListOptions) ([]byte, string, *apperrors.AppError) {
	guests, appErr := s.ListGuests(ctx, opts)
	if appErr != nil {
		return nil, "", appErr
	}

	data, err := renderGuestCSV(guests)
	if err != nil {
		return nil, "", apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to render export", err)
	}

	stamp := time.Now().Format("2006-01-02-15-04-05")
	return data, fmt.Sprintf("guests-%s.csv", stamp), nil
}

func renderGuestCSV(guests []entity.Guest) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range guests {
		g := &guests[i]
		going := "NO"
		if g.Going {
			going = "YES"
		}
		row := []string{
			g.Name,
			g.Phone,
			g.Email,
			g.Company,
			g.Position,
			going,
			g.CreatedAt.Format(exportTimeFormat),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// uniqueViolationField reports which contact field tripped a Postgres
// unique index, when the error is a unique violation at all.
func uniqueViolationField(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return "", false
	}
	switch {
	case strings.Contains(pqErr.Constraint, "phone"):
		return "phone", true
	case strings.Contains(pqErr.Constraint, "email"):
		return "email", true
	default:
		return "contact", true
	}
}
