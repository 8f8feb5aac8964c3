package service

import (
	"context"
	"errors"
	"strings"

	"auth-sample/internal/domain"
	"auth-sample/internal/password"
	"auth-sample/internal/repository"
	"auth-sample/internal/session"
)

var (
	// ErrMissingInput indicates an empty email or password.
	ErrMissingInput = errors.New("email and password are required")
	// ErrEmailTaken is returned when registering with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	// Unknown email and wrong password both map here so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService orchestrates the credential and session lifecycle. Every
// successful Register or Login mints a session token for cookie issuance.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(token string)
	ResolveSession(token string) (int64, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}

type authService struct {
	users    repository.UserRepository
	sessions session.Registry
}

func NewAuthService(users repository.UserRepository, sessions session.Registry) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
	}
}

func (s *authService) Register(ctx context.Context, email, plaintext string) (string, error) {
	email = strings.TrimSpace(email)
	plaintext = strings.TrimSpace(plaintext)
	if email == "" || plaintext == "" {
		return "", ErrMissingInput
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:          email,
		HashedPassword: hashed,
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return s.sessions.Create(id)
}

func (s *authService) Login(ctx context.Context, email, plaintext string) (string, error) {
	email = strings.TrimSpace(email)
	plaintext = strings.TrimSpace(plaintext)
	if email == "" || plaintext == "" {
		return "", ErrMissingInput
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(plaintext, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	return s.sessions.Create(user.ID)
}

func (s *authService) Logout(token string) {
	if token == "" {
		return
	}
	s.sessions.Revoke(token)
}

func (s *authService) ResolveSession(token string) (int64, error) {
	if token == "" {
		return 0, session.ErrNotFound
	}
	return s.sessions.Resolve(token)
}

func (s *authService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// sanitizeUser strips the password hash before the user leaves the service.
func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
