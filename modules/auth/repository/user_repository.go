package repository

import (
	"context"
	"database/sql"
	"errors"

	"event-rsvp-api/core/database"
	"event-rsvp-api/core/logger"
	"event-rsvp-api/modules/auth/entity"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

const userColumns = "id, email, password_hash, created_at, updated_at"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type userRepository struct {
	db database.Database
}

func NewUserRepository(db database.Database) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := "INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING " + userColumns
	if err := r.db.GetContext(ctx, user, query, user.Email, user.PasswordHash); err != nil {
		logger.Error("UserRepository:Create:Error", "error", err, "email", user.Email)
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	query := "SELECT " + userColumns + " FROM users WHERE email = $1"
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("UserRepository:GetByEmail:Error", "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("UserRepository:GetByID:Error", "error", err, "id", id)
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.SQLx().ExecContext(ctx,
		"UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2", passwordHash, id)
	if err != nil {
		logger.Error("UserRepository:UpdatePassword:Error", "error", err, "id", id)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
