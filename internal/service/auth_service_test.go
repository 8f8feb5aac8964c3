package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-sample/internal/domain"
	"auth-sample/internal/repository"
	"auth-sample/internal/session"
)

// memoryUserRepository is a map-backed stand-in for the sqlite store.
type memoryUserRepository struct {
	nextID  int64
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		nextID:  1,
		byEmail: make(map[string]*domain.User),
		byID:    make(map[int64]*domain.User),
	}
}

func (r *memoryUserRepository) Init(ctx context.Context) error { return nil }

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return 0, repository.ErrDuplicateEmail
	}
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.byEmail[user.Email] = &copied
	r.byID[user.ID] = &copied
	return user.ID, nil
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func newTestService() (AuthService, *memoryUserRepository, *session.MemoryRegistry) {
	repo := newMemoryUserRepository()
	registry := session.NewMemoryRegistry(time.Hour)
	return NewAuthService(repo, registry), repo, registry
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, registry := newTestService()
	ctx := context.Background()

	registerToken, err := svc.Register(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	registeredID, err := registry.Resolve(registerToken)
	require.NoError(t, err)

	loginToken, err := svc.Login(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	assert.NotEqual(t, registerToken, loginToken)

	loginID, err := registry.Resolve(loginToken)
	require.NoError(t, err)
	assert.Equal(t, registeredID, loginID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@b.com", "different")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterMissingInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw123")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.Register(ctx, "a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = svc.Register(ctx, "a@b.com", "   ")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "a@b.com", "wrong")
	_, unknownEmail := svc.Login(ctx, "nobody@b.com", "pw123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestLoginMissingInput(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	token, err := svc.Register(ctx, "a@b.com", "pw123")
	require.NoError(t, err)

	_, err = svc.ResolveSession(token)
	require.NoError(t, err)

	svc.Logout(token)
	_, err = svc.ResolveSession(token)
	assert.ErrorIs(t, err, session.ErrNotFound)

	// a second logout and an empty token are both no-ops
	svc.Logout(token)
	svc.Logout("")
}

func TestResolveSessionEmptyToken(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ResolveSession("")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestProfileOmitsPasswordHash(t *testing.T) {
	svc, repo, registry := newTestService()
	ctx := context.Background()

	token, err := svc.Register(ctx, "a@b.com", "pw123")
	require.NoError(t, err)
	userID, err := registry.Resolve(token)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.HashedPassword)

	profile, err := svc.Profile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Empty(t, profile.HashedPassword)
}
