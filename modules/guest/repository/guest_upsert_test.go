package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-rsvp-api/core/database"
	"event-rsvp-api/modules/guest/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	upsertUpdatePattern = `(?s)UPDATE guests\s+SET name = \$1, email = \$2, phone = \$3.*SELECT id FROM guests WHERE email = \$2 OR phone = \$3.*RETURNING`
	upsertInsertPattern = `(?s)INSERT INTO guests \(name, email, phone, company, position, going\).*RETURNING`
)

func newMockRepo(t *testing.T) (GuestRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	db := database.NewDatabase(sqlx.NewDb(mockDB, "sqlmock"))
	return NewGuestRepository(db), mock
}

func guestRow(id uuid.UUID, name, email, phone string, going bool) *sqlmock.Rows {
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "name", "email", "phone", "company", "position", "going", "created_at", "updated_at"}).
		AddRow(id.String(), name, email, phone, "Acme", "Engineer", going, at, at)
}

func TestUpsertUpdatesRowMatchingEmailOrPhone(t *testing.T) {
	repo, mock := newMockRepo(t)
	existingID := uuid.New()

	// A resubmission with a known phone but a new email must land on the
	// existing row, overwriting both contact fields.
	mock.ExpectBegin()
	mock.ExpectQuery(upsertUpdatePattern).
		WithArgs("Ada Lovelace", "ada@new.example", "555-0100", "Acme", "Engineer", false).
		WillReturnRows(guestRow(existingID, "Ada Lovelace", "ada@new.example", "555-0100", false))
	mock.ExpectCommit()

	guest := &entity.Guest{
		Name:     "Ada Lovelace",
		Email:    "ada@new.example",
		Phone:    "555-0100",
		Company:  "Acme",
		Position: "Engineer",
		Going:    false,
	}
	if err := repo.Upsert(context.Background(), guest); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if guest.ID != existingID {
		t.Errorf("merge should keep the existing row, got id %s want %s", guest.ID, existingID)
	}
	if guest.Going {
		t.Error("resubmission must overwrite the going flag")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertInsertsWhenNeitherContactMatches(t *testing.T) {
	repo, mock := newMockRepo(t)
	newID := uuid.New()

	// The update must miss first, then the insert runs in the same
	// transaction.
	mock.ExpectBegin()
	mock.ExpectQuery(upsertUpdatePattern).
		WithArgs("Ada Lovelace", "ada@example.com", "555-0100", "Acme", "Engineer", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(upsertInsertPattern).
		WithArgs("Ada Lovelace", "ada@example.com", "555-0100", "Acme", "Engineer", true).
		WillReturnRows(guestRow(newID, "Ada Lovelace", "ada@example.com", "555-0100", true))
	mock.ExpectCommit()

	guest := &entity.Guest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Phone:    "555-0100",
		Company:  "Acme",
		Position: "Engineer",
		Going:    true,
	}
	if err := repo.Upsert(context.Background(), guest); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if guest.ID != newID {
		t.Errorf("insert should scan the generated id, got %s", guest.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertSurfacesInsertConflict(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Racing first-time submissions: both updates miss, the loser's insert
	// hits the unique index. The pq error must reach the caller intact so
	// the service can map it to a conflict.
	mock.ExpectBegin()
	mock.ExpectQuery(upsertUpdatePattern).
		WithArgs("Ada Lovelace", "ada@example.com", "555-0100", "", "", true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(upsertInsertPattern).
		WithArgs("Ada Lovelace", "ada@example.com", "555-0100", "", "", true).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "idx_guests_email"})
	mock.ExpectRollback()

	guest := &entity.Guest{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
		Going: true,
	}
	err := repo.Upsert(context.Background(), guest)
	if err == nil {
		t.Fatal("expected the unique violation to propagate")
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		t.Errorf("expected the pq error unchanged, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
