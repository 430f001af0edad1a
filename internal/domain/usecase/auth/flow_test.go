package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	"github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/usecase"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/logger"
)

// In-memory collaborators for exercising the full session lifecycle
// without mock choreography.

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) WithTimeout(ctx context.Context, _ time.Duration) (context.Context, context.CancelFunc) {
	return context.WithCancel(ctx)
}

type fakeUserStore struct {
	byID   map[uint64]*entity.User
	nextID uint64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: make(map[uint64]*entity.User), nextID: 1}
}

func (s *fakeUserStore) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	if user, ok := s.byID[id]; ok {
		return user, nil
	}
	return nil, errs.ErrUserNotFound
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range s.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (s *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *entity.User) error {
	user.ID = s.nextID
	s.nextID++
	s.byID[user.ID] = user
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id uint64) error {
	delete(s.byID, id)
	return nil
}

type fakeRefreshStore struct {
	byToken map[string]*entity.RefreshToken
}

func newFakeRefreshStore() *fakeRefreshStore {
	return &fakeRefreshStore{byToken: make(map[string]*entity.RefreshToken)}
}

func (s *fakeRefreshStore) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	if t, ok := s.byToken[token]; ok {
		return t, nil
	}
	return nil, errs.ErrRefreshTokenNotFound
}

func (s *fakeRefreshStore) FindByUserID(_ context.Context, userID uint64) (*entity.RefreshToken, error) {
	for _, t := range s.byToken {
		if t.UserID == userID {
			return t, nil
		}
	}
	return nil, errs.ErrRefreshTokenNotFound
}

func (s *fakeRefreshStore) Create(_ context.Context, token *entity.RefreshToken) error {
	s.byToken[token.Token] = token
	return nil
}

func (s *fakeRefreshStore) Delete(_ context.Context, token string) error {
	delete(s.byToken, token)
	return nil
}

func (s *fakeRefreshStore) DeleteAllByUserID(_ context.Context, userID uint64) error {
	for value, t := range s.byToken {
		if t.UserID == userID {
			delete(s.byToken, value)
		}
	}
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (fakeHasher) Compare(hashed, password string) error {
	if hashed != "hash:"+password {
		return errs.ErrInvalidCredentials
	}
	return nil
}

// fakeSigner issues a distinct token on every call so the test can verify
// that refresh mints fresh access tokens.
type fakeSigner struct {
	seq int
}

func (s *fakeSigner) Generate(userID uint64, email string, role string) (string, error) {
	s.seq++
	return fmt.Sprintf("access:%d:%s:%d", userID, role, s.seq), nil
}

func (s *fakeSigner) Subject(string) (string, error) { return "", errs.ErrInvalidAccessToken }

func (s *fakeSigner) Validate(string, string) (*core.AccessTokenClaims, error) {
	return nil, errs.ErrInvalidAccessToken
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}

	service := NewService(
		newFakeUserStore(),
		newFakeRefreshStore(),
		fakeHasher{},
		&fakeSigner{},
		clock,
		logger.NewNoopLogger(),
		testRefreshTTL,
	)

	// Register issues both tokens.
	registered, err := service.Register(ctx, usecase.RegisterRequest{
		Name:     "Jane Doe",
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registered.AccessToken)
	require.NotEmpty(t, registered.RefreshToken)

	// Login while the refresh token is outstanding returns the same value.
	loggedIn, err := service.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.RefreshToken, loggedIn.RefreshToken)

	// Refresh before expiry: new access token, same refresh value.
	clock.now = clock.now.Add(time.Hour)
	refreshed, err := service.RefreshAccessToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.RefreshToken, refreshed.RefreshToken)
	assert.NotEqual(t, loggedIn.AccessToken, refreshed.AccessToken)

	// Past expiry the refresh fails and the token is gone.
	clock.now = clock.now.Add(testRefreshTTL)
	_, err = service.RefreshAccessToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, errs.ErrRefreshTokenExpired)

	_, err = service.RefreshAccessToken(ctx, registered.RefreshToken)
	assert.ErrorIs(t, err, errs.ErrRefreshTokenNotFound)

	// The next login mints a fresh refresh token.
	reLoggedIn, err := service.Login(ctx, "jane@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, reLoggedIn.RefreshToken)
}
