package service

import (
	"context"
	"errors"
	"strings"

	"event-rsvp-api/core/cache"
	"event-rsvp-api/core/config"
	"event-rsvp-api/core/constants"
	apperrors "event-rsvp-api/core/errors"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/core/utils"
	"event-rsvp-api/modules/auth/dto"
	"event-rsvp-api/modules/auth/entity"
	"event-rsvp-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

func NewAuthService(repo repository.UserRepository, c cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: c}
}

// SeedAdmin creates the configured admin account when it does not exist
// yet. An existing account is left alone, including its password.
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	cfg, ok := config.GetSafe()
	if !ok || cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("AuthService:SeedAdmin:Skipped", "reason", "ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Admin.Email))
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{Email: email, PasswordHash: string(hash)}
	if err := s.repo.Create(ctx, user); err != nil {
		return err
	}
	logger.Info("AuthService:SeedAdmin:Created", "email", email)
	return nil
}

// Login verifies credentials and returns an access/refresh token pair.
// Failed attempts per email are counted in Redis; past the limit the
// account is blocked for a cooldown period regardless of the password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, *apperrors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Email and password are required.", nil)
	}

	attemptKey := constants.RedisKeyLoginAttempts + email
	if s.cache != nil {
		attempts, err := s.cache.IsLoginBlocked(ctx, attemptKey)
		if err != nil {
			logger.Warn("AuthService:Login:AttemptCheck:Error", "error", err)
		} else if attempts >= constants.MaxLoginAttempts {
			return nil, apperrors.NewAppError(apperrors.ErrTooManyAttempts,
				"Too many failed attempts, try again later.", nil)
		}
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		s.recordFailedAttempt(ctx, attemptKey)
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid email or password.", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to look up account", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailedAttempt(ctx, attemptKey)
		logger.Warn("AuthService:Login:BadPassword", "email", email)
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid email or password.", err)
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, attemptKey); err != nil {
			logger.Warn("AuthService:Login:AttemptReset:Error", "error", err)
		}
	}

	pair, appErr := s.issueTokens(user)
	if appErr != nil {
		return nil, appErr
	}
	logger.Info("AuthService:Login:Success", "user_id", user.ID)
	return pair, nil
}

// Refresh rotates a refresh token: the old one is blacklisted for its
// remaining lifetime and a fresh pair is issued.
func (s *AuthService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenPairResponse, *apperrors.AppError) {
	if req.RefreshToken == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidInput, "Refresh token is required.", nil)
	}

	claims, err := utils.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Invalid or expired refresh token.", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Token scope not allowed.", nil)
	}

	if s.cache != nil {
		blacklisted, err := s.cache.IsTokenBlacklisted(ctx, req.RefreshToken)
		if err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrStoreUnavailable, "Authorization backend unavailable.", err)
		}
		if blacklisted {
			return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Refresh token has been revoked.", nil)
		}
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrUnauthorized, "Account no longer exists.", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to look up account", err)
	}

	if s.cache != nil {
		if err := s.cache.AddToTokenBlacklist(ctx, req.RefreshToken, utils.TokenRemainingTTL(claims)); err != nil {
			logger.Warn("AuthService:Refresh:Blacklist:Error", "error", err)
		}
	}

	pair, appErr := s.issueTokens(user)
	if appErr != nil {
		return nil, appErr
	}
	logger.Info("AuthService:Refresh:Success", "user_id", user.ID)
	return pair, nil
}

// Logout revokes the presented access token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, rawToken string, claims *utils.TokenClaims) *apperrors.AppError {
	if s.cache == nil || rawToken == "" {
		return nil
	}
	if err := s.cache.AddToTokenBlacklist(ctx, rawToken, utils.TokenRemainingTTL(claims)); err != nil {
		return apperrors.NewAppError(apperrors.ErrStoreUnavailable, "Failed to revoke token.", err)
	}
	logger.Info("AuthService:Logout:Success", "user_id", claims.UserID)
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, *apperrors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "Account not found", err)
	}
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to look up account", err)
	}
	return user, nil
}

// IsTokenBlacklisted satisfies the auth middleware's TokenChecker.
func (s *AuthService) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if s.cache == nil {
		return false, nil
	}
	return s.cache.IsTokenBlacklisted(ctx, token)
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenPairResponse, *apperrors.AppError) {
	access, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenAccess)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to issue token", err)
	}
	refresh, err := utils.GenerateToken(user.ID, user.Email, constants.ScopeTokenRefresh)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrInternalServer, "Failed to issue token", err)
	}
	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) recordFailedAttempt(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.IncrementLoginAttempt(ctx, key); err != nil {
		logger.Warn("AuthService:RecordFailedAttempt:Error", "error", err)
		return
	}
	// Each failure refreshes the cooldown window.
	if err := s.cache.Expire(ctx, key, constants.BlockDuration); err != nil {
		logger.Warn("AuthService:RecordFailedAttempt:Expire:Error", "error", err)
	}
}
