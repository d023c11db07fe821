//go:build integration

package postgres

import (
	"context"
	"os"
	"sync"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newTestDB opens POSTGRES_TEST_DSN, migrates the schema and truncates it afterwards.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		db.Exec("TRUNCATE subscriptions, tweets, videos, watch_histories, users CASCADE")
	})

	return db
}

func createUser(t *testing.T, repo repository.UserRepository, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		FullName:     "Test " + username,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_Postgres(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "alice")

	found, err := repo.FindByIdentifier(ctx, "alice", "")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	dup := &entity.User{Username: "alice", Email: "x@example.com", FullName: "x", PasswordHash: "h"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrUserAlreadyExists)

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, "r1"))
	require.NoError(t, repo.RotateRefreshToken(ctx, user.ID, "r1", "r2"))
	assert.ErrorIs(t, repo.RotateRefreshToken(ctx, user.ID, "r1", "r3"), repository.ErrRefreshTokenMismatch)

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, ""))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.RefreshToken)

	v1, v2 := uuid.New(), uuid.New()
	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v1))
	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v2))
	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v1))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{v2, v1}, found.WatchHistory)

	updated, err := repo.UpdateAccountDetails(ctx, user.ID, "Alice A", "alice2@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice2@example.com", updated.Email)
}

func TestUserRepository_UpdatePasswordHash_Postgres(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "dora")
	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, "r1"))

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "h2", false))
	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "h2", found.PasswordHash)
	assert.Equal(t, "r1", found.RefreshToken)

	require.NoError(t, repo.UpdatePasswordHash(ctx, user.ID, "h3", true))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "h3", found.PasswordHash)
	assert.Empty(t, found.RefreshToken)
	assert.ErrorIs(t, repo.RotateRefreshToken(ctx, user.ID, "r1", "r2"), repository.ErrRefreshTokenMismatch)

	assert.ErrorIs(t, repo.UpdatePasswordHash(ctx, uuid.New(), "h4", true), repository.ErrUserNotFound)
}

func TestUserRepository_ConcurrentRotation_Postgres(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()
	user := createUser(t, repo, "erin")
	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, "r1"))

	const racers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range racers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.RotateRefreshToken(ctx, user.ID, "r1", uuid.NewString()); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestTweetAndChannelRepositories_Postgres(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	channels := NewChannelRepository(db)
	ctx := context.Background()

	creator := createUser(t, users, "frank")
	viewer := createUser(t, users, "grace")

	tweet := &entity.Tweet{OwnerID: creator.ID, Content: "hello"}
	require.NoError(t, tweets.Create(ctx, tweet))
	views, err := tweets.ListByOwner(ctx, creator.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "frank", views[0].Username)

	require.NoError(t, channels.Subscribe(ctx, viewer.ID, creator.ID))
	require.NoError(t, channels.Subscribe(ctx, viewer.ID, creator.ID))
	profile, err := channels.GetChannelProfile(ctx, "frank", viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	video := model.VideoModel{ID: uuid.New(), OwnerID: creator.ID, VideoFile: "f", Thumbnail: "t", Title: "intro"}
	require.NoError(t, db.Create(&video).Error)
	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, video.ID))
	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, uuid.New()))

	history, err := channels.GetWatchHistory(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.NotNil(t, history[0].Owner)
	assert.Equal(t, "frank", history[0].Owner.Username)

	_, err = channels.GetWatchHistory(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, channels.Unsubscribe(ctx, viewer.ID, creator.ID))
	subscribed, err := channels.IsSubscribed(ctx, viewer.ID, creator.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)
}
