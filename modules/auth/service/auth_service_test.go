package service

import (
	"context"
	"testing"
	"time"

	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/modules/auth/dto"
	"event-rsvp-api/modules/auth/entity"
	"event-rsvp-api/modules/auth/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byEmail map[string]*entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid.New()
	if s.byEmail == nil {
		s.byEmail = map[string]*entity.User{}
	}
	s.byEmail[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := s.byEmail[email]; ok {
		out := *u
		return &out, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range s.byEmail {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return nil
}

// memCache is an in-memory stand-in for the Redis cache.
type memCache struct {
	values   map[string]string
	counters map[string]int
}

func newMemCache() *memCache {
	return &memCache{values: map[string]string{}, counters: map[string]int{}}
}

func (m *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *memCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
		delete(m.counters, k)
	}
	return nil
}

func (m *memCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (m *memCache) AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	m.values[constants.RedisKeyTokenBlacklist+token] = "1"
	return nil
}

func (m *memCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	_, ok := m.values[constants.RedisKeyTokenBlacklist+token]
	return ok, nil
}

func (m *memCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	m.counters[key]++
	return nil
}

func (m *memCache) IsLoginBlocked(ctx context.Context, key string) (int, error) {
	return m.counters[key], nil
}

func (m *memCache) Client() *redis.Client { return nil }

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, newMemCache())

	for _, req := range []dto.LoginRequest{{}, {Email: "a@x.com"}, {Password: "pw"}} {
		_, appErr := svc.Login(context.Background(), &req)
		if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
			t.Errorf("expected ErrInvalidInput for %+v, got %v", req, appErr)
		}
	}
}

func TestLoginUnknownAccountCountsAsFailure(t *testing.T) {
	cache := newMemCache()
	svc := NewAuthService(&stubUserRepo{}, cache)

	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "ghost@x.com", Password: "pw"})
	if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", appErr)
	}
	if cache.counters[constants.RedisKeyLoginAttempts+"ghost@x.com"] != 1 {
		t.Error("failed attempt was not recorded")
	}
}

func TestLoginWrongPasswordEventuallyLocksOut(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &stubUserRepo{}
	_ = repo.Create(context.Background(), &entity.User{Email: "admin@x.com", PasswordHash: string(hash)})

	cache := newMemCache()
	svc := NewAuthService(repo, cache)

	for i := 0; i < constants.MaxLoginAttempts; i++ {
		_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@x.com", Password: "wrong"})
		if appErr == nil || appErr.Code != apperrors.ErrUnauthorized {
			t.Fatalf("attempt %d: expected ErrUnauthorized, got %v", i, appErr)
		}
	}

	// The limit is reached; even the right password is refused now.
	_, appErr := svc.Login(context.Background(), &dto.LoginRequest{Email: "admin@x.com", Password: "correct"})
	if appErr == nil || appErr.Code != apperrors.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", appErr)
	}
}

func TestLoginEmailIsNormalized(t *testing.T) {
	cache := newMemCache()
	svc := NewAuthService(&stubUserRepo{}, cache)

	_, _ = svc.Login(context.Background(), &dto.LoginRequest{Email: "  GHOST@X.COM ", Password: "pw"})
	if cache.counters[constants.RedisKeyLoginAttempts+"ghost@x.com"] != 1 {
		t.Error("attempt key should use the normalized email")
	}
}

func TestRefreshRejectsMissingToken(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{}, newMemCache())

	_, appErr := svc.Refresh(context.Background(), &dto.RefreshRequest{})
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", appErr)
	}
}
