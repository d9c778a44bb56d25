package service

import (
	"context"
	"io"
	"strings"
	"testing"

	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/params"
	"event-rsvp-api/modules/media/entity"

	"github.com/google/uuid"
)

type stubMediaRepo struct {
	created *entity.Media
}

func (s *stubMediaRepo) Create(ctx context.Context, media *entity.Media) error {
	media.ID = uuid.New()
	s.created = media
	return nil
}

func (s *stubMediaRepo) List(ctx context.Context, qp *params.QueryParams, mediaType entity.MediaType, status entity.MediaStatus) (*entity.PaginatedMediaEntity, error) {
	return &entity.PaginatedMediaEntity{Items: []entity.Media{}}, nil
}

func (s *stubMediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) GetActiveByType(ctx context.Context, mediaType entity.MediaType) (*entity.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) Update(ctx context.Context, media *entity.Media) error { return nil }

func (s *stubMediaRepo) Activate(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) Deactivate(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) DeleteByID(ctx context.Context, id uuid.UUID) (*entity.Media, error) {
	return nil, nil
}

func (s *stubMediaRepo) Stats(ctx context.Context) (entity.MediaStats, error) {
	return entity.MediaStats{}, nil
}

type stubStore struct {
	puts    []string
	deletes []string
}

func (s *stubStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	s.puts = append(s.puts, key)
	return nil
}

func (s *stubStore) Delete(ctx context.Context, key string) error {
	s.deletes = append(s.deletes, key)
	return nil
}

func (s *stubStore) PublicURL(key string) string { return "https://cdn.example.com/" + key }

func TestUploadRejectsInvalidInput(t *testing.T) {
	svc := NewMediaService(&stubMediaRepo{}, &stubStore{}, nil)

	cases := []struct {
		name string
		in   UploadInput
	}{
		{"bad type", UploadInput{Type: "document", MimeType: "image/png", Size: 10, Body: strings.NewReader("x")}},
		{"no file", UploadInput{Type: entity.MediaTypeImage, MimeType: "image/png"}},
		{"mime mismatch", UploadInput{Type: entity.MediaTypeVideo, MimeType: "image/png", Size: 10, Body: strings.NewReader("x")}},
		{"oversize", UploadInput{Type: entity.MediaTypeImage, MimeType: "image/png", Size: 500 << 20, Body: strings.NewReader("x")}},
	}
	for _, tc := range cases {
		_, appErr := svc.Upload(context.Background(), &tc.in)
		if appErr == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if appErr.Code != apperrors.ErrInvalidInput {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, appErr.Code)
		}
	}
}

func TestUploadStoresObjectAndRecord(t *testing.T) {
	repo := &stubMediaRepo{}
	store := &stubStore{}
	svc := NewMediaService(repo, store, nil)

	media, appErr := svc.Upload(context.Background(), &UploadInput{
		Title:    "Summer Gala Teaser",
		Type:     entity.MediaTypeVideo,
		FileName: "teaser.MP4",
		MimeType: "video/mp4",
		Size:     1024,
		Body:     strings.NewReader("data"),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	if len(store.puts) != 1 {
		t.Fatalf("expected one object written, got %d", len(store.puts))
	}
	key := store.puts[0]
	if !strings.HasPrefix(key, "videos/summer-gala-teaser-") || !strings.HasSuffix(key, ".mp4") {
		t.Errorf("unexpected object key: %q", key)
	}
	if media.Status != entity.MediaStatusInactive {
		t.Errorf("uploads should start inactive, got %q", media.Status)
	}
	if media.FileURL != "https://cdn.example.com/"+key {
		t.Errorf("file URL not derived from key: %q", media.FileURL)
	}
	if repo.created == nil {
		t.Fatal("record was not persisted")
	}
}

func TestUploadFallsBackToFileNameTitle(t *testing.T) {
	repo := &stubMediaRepo{}
	svc := NewMediaService(repo, &stubStore{}, nil)

	media, appErr := svc.Upload(context.Background(), &UploadInput{
		Type:     entity.MediaTypeImage,
		FileName: "poster.png",
		MimeType: "image/png",
		Size:     10,
		Body:     strings.NewReader("x"),
	})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if media.Title != "poster" {
		t.Errorf("title should derive from the file name, got %q", media.Title)
	}
}

func TestMimeAllowed(t *testing.T) {
	if !mimeAllowed(entity.MediaTypeVideo, "video/mp4") {
		t.Error("video/mp4 should be allowed for videos")
	}
	if !mimeAllowed(entity.MediaTypeImage, "IMAGE/PNG") {
		t.Error("mime comparison should be case insensitive")
	}
	if mimeAllowed(entity.MediaTypeImage, "application/pdf") {
		t.Error("application/pdf should be rejected")
	}
}
