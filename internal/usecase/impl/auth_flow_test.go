package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/auth"
	"vidtube/internal/infra/metrics"
	"vidtube/internal/infra/ratelimit"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryUserRepository keeps users in a map and applies the same
// compare-and-set rules as the real stores.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[uuid.UUID]entity.User{}}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return &user, nil
}

func (r *memoryUserRepository) FindByIdentifier(_ context.Context, username, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if (username != "" && user.Username == username) || (email != "" && user.Email == email) {
			return &user, nil
		}
	}

	return nil, errors.WithStack(repository.ErrUserNotFound)
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.FindByIdentifier(ctx, username, "")
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return errors.WithStack(repository.ErrUserAlreadyExists)
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = *user

	return nil
}

func (r *memoryUserRepository) UpdateRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	return r.update(id, func(user *entity.User) { user.RefreshToken = token })
}

func (r *memoryUserRepository) RotateRefreshToken(_ context.Context, id uuid.UUID, expected, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok || expected == "" || user.RefreshToken != expected {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}
	user.RefreshToken = next
	r.users[id] = user

	return nil
}

func (r *memoryUserRepository) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string, revokeSession bool) error {
	return r.update(id, func(user *entity.User) {
		user.PasswordHash = hash
		if revokeSession {
			user.RefreshToken = ""
		}
	})
}

func (r *memoryUserRepository) UpdateAccountDetails(_ context.Context, id uuid.UUID, fullName, email string) (*entity.User, error) {
	return r.updateAndGet(id, func(user *entity.User) {
		user.FullName = fullName
		user.Email = email
	})
}

func (r *memoryUserRepository) UpdateAvatar(_ context.Context, id uuid.UUID, url string) (*entity.User, error) {
	return r.updateAndGet(id, func(user *entity.User) { user.Avatar = url })
}

func (r *memoryUserRepository) UpdateCoverImage(_ context.Context, id uuid.UUID, url string) (*entity.User, error) {
	return r.updateAndGet(id, func(user *entity.User) { user.CoverImage = url })
}

func (r *memoryUserRepository) AppendWatchHistory(_ context.Context, id uuid.UUID, videoID uuid.UUID) error {
	return r.update(id, func(user *entity.User) {
		history := make([]uuid.UUID, 0, len(user.WatchHistory)+1)
		for _, watched := range user.WatchHistory {
			if watched != videoID {
				history = append(history, watched)
			}
		}
		user.WatchHistory = append(history, videoID)
	})
}

func (r *memoryUserRepository) update(id uuid.UUID, apply func(user *entity.User)) error {
	_, err := r.updateAndGet(id, apply)

	return err
}

func (r *memoryUserRepository) updateAndGet(id uuid.UUID, apply func(user *entity.User)) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}
	apply(&user)
	r.users[id] = user

	return &user, nil
}

func (r *memoryUserRepository) storedRefreshToken(t *testing.T, id uuid.UUID) string {
	t.Helper()

	user, err := r.FindByID(context.Background(), id)
	require.NoError(t, err)

	return user.RefreshToken
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

type authFlow struct {
	service usecase.AuthUsecase
	users   *memoryUserRepository
	clock   *testClock
}

func newAuthFlow(t *testing.T, revokeOnPasswordChange bool) *authFlow {
	t.Helper()

	clock := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	tokens, err := auth.NewJWTServiceWithConfig(auth.TokenConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    24 * time.Hour,
		Now:           clock.Now,
	})
	require.NoError(t, err)

	users := newMemoryUserRepository()
	svc := NewAuthService(AuthServiceParams{
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasherWithCost(4),
		TokenService: tokens,
		Limiter:      ratelimit.NewNoopLimiter(),
		Metrics:      metrics.NewNoopAuthMetrics(),
		Config:       newTestConfig(revokeOnPasswordChange),
		Logger:       newDiscardLogger(),
	})

	return &authFlow{service: svc, users: users, clock: clock}
}

func (f *authFlow) registerAndLogin(t *testing.T) *usecase.LoginOutput {
	t.Helper()
	ctx := context.Background()

	_, err := f.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice",
		Password: "P@ss1",
	})
	require.NoError(t, err)

	out, err := f.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "P@ss1"})
	require.NoError(t, err)

	return out
}

func TestAuthFlow_RegisterLoginAuthenticate(t *testing.T) {
	flow := newAuthFlow(t, false)
	ctx := context.Background()

	out := flow.registerAndLogin(t)
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, out.Tokens.RefreshToken, flow.users.storedRefreshToken(t, out.User.ID))

	body, err := json.Marshal(out.User)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "refreshToken")

	me, err := flow.service.Authenticate(ctx, out.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, me.ID)

	_, err = flow.service.Authenticate(ctx, out.Tokens.RefreshToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = flow.service.Login(ctx, &usecase.LoginInput{Email: "alice@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	flow.clock.Advance(16 * time.Minute)
	_, err = flow.service.Authenticate(ctx, out.Tokens.AccessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthFlow_RefreshRotatesOnce(t *testing.T) {
	flow := newAuthFlow(t, false)
	ctx := context.Background()
	out := flow.registerAndLogin(t)

	flow.clock.Advance(time.Minute)
	rotated, err := flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.Tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, out.Tokens.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, rotated.RefreshToken, flow.users.storedRefreshToken(t, out.User.ID))

	_, err = flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.Tokens.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	flow.clock.Advance(time.Minute)
	again, err := flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: rotated.RefreshToken})
	require.NoError(t, err)
	assert.Equal(t, again.RefreshToken, flow.users.storedRefreshToken(t, out.User.ID))
}

func TestAuthFlow_LogoutRevokesRefresh(t *testing.T) {
	flow := newAuthFlow(t, false)
	ctx := context.Background()
	out := flow.registerAndLogin(t)

	require.NoError(t, flow.service.Logout(ctx, out.User.ID))
	assert.Empty(t, flow.users.storedRefreshToken(t, out.User.ID))

	_, err := flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.Tokens.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	require.NoError(t, flow.service.Logout(ctx, out.User.ID))
}

func TestAuthFlow_ConcurrentRefreshHasOneWinner(t *testing.T) {
	flow := newAuthFlow(t, false)
	ctx := context.Background()
	out := flow.registerAndLogin(t)
	flow.clock.Advance(time.Minute)

	const racers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*entity.TokenPair
		losses  int
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pair, err := flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.Tokens.RefreshToken})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
				losses++

				return
			}
			winners = append(winners, pair)
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, racers-1, losses)
	assert.Equal(t, winners[0].RefreshToken, flow.users.storedRefreshToken(t, out.User.ID))
}

func TestAuthFlow_ChangePasswordRevokesSession(t *testing.T) {
	flow := newAuthFlow(t, true)
	ctx := context.Background()
	out := flow.registerAndLogin(t)

	err := flow.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		UserID:      out.User.ID,
		OldPassword: "P@ss1",
		NewPassword: "N3w-pass",
	})
	require.NoError(t, err)

	_, err = flow.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: out.Tokens.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = flow.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "P@ss1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = flow.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "N3w-pass"})
	assert.NoError(t, err)
}
