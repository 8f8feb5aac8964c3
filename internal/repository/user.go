package repository

import (
	"context"
	"errors"

	"auth-sample/internal/domain"
)

var (
	// ErrDuplicateEmail indicates a create with an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound indicates no user matched the lookup key.
	ErrNotFound = errors.New("user not found")
)

// UserRepository defines persistence operations for User entities.
// Email lookups are exact-match; the store applies no normalization.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
