//go:build integration

package mongo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// newTestDatabase connects to MONGO_TEST_URI and returns a throwaway database.
func newTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetTimeout(10 * time.Second))
	require.NoError(t, err)

	db := client.Database("vidtube_test_" + uuid.NewString()[:8])
	ctx := context.Background()
	require.NoError(t, EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
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

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	ctx := context.Background()

	user := createUser(t, repo, "alice")
	assert.NotEqual(t, uuid.Nil, user.ID)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byEmail, err := repo.FindByIdentifier(ctx, "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.FindByIdentifier(ctx, "", "")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	dup := &entity.User{Username: "alice", Email: "other@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrUserAlreadyExists)
}

func TestUserRepository_RefreshTokenLifecycle(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	ctx := context.Background()
	user := createUser(t, repo, "bob")

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, "r1"))
	require.NoError(t, repo.RotateRefreshToken(ctx, user.ID, "r1", "r2"))
	assert.ErrorIs(t, repo.RotateRefreshToken(ctx, user.ID, "r1", "r3"), repository.ErrRefreshTokenMismatch)

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "r2", stored.RefreshToken)

	require.NoError(t, repo.UpdateRefreshToken(ctx, user.ID, ""))
	stored, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.RefreshToken)
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
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

func TestUserRepository_ConcurrentRotationHasOneWinner(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	ctx := context.Background()
	user := createUser(t, repo, "carol")
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

func TestUserRepository_AppendWatchHistoryMovesToEnd(t *testing.T) {
	repo := NewUserRepository(newTestDatabase(t))
	ctx := context.Background()
	user := createUser(t, repo, "dave")
	v1, v2 := uuid.New(), uuid.New()

	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v1))
	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v2))
	require.NoError(t, repo.AppendWatchHistory(ctx, user.ID, v1))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{v2, v1}, stored.WatchHistory)
}

func TestTweetRepository_CRUD(t *testing.T) {
	db := newTestDatabase(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()
	owner := createUser(t, users, "erin")

	first := &entity.Tweet{OwnerID: owner.ID, Content: "first"}
	require.NoError(t, tweets.Create(ctx, first))
	second := &entity.Tweet{OwnerID: owner.ID, Content: "second"}
	require.NoError(t, tweets.Create(ctx, second))

	updated, err := tweets.UpdateContent(ctx, first.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	views, err := tweets.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "erin", views[0].Username)

	require.NoError(t, tweets.Delete(ctx, first.ID))
	assert.ErrorIs(t, tweets.Delete(ctx, first.ID), repository.ErrTweetNotFound)
	_, err = tweets.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrTweetNotFound)
}

func TestChannelRepository_ProfileAndHistory(t *testing.T) {
	db := newTestDatabase(t)
	users := NewUserRepository(db)
	channels := NewChannelRepository(db)
	ctx := context.Background()

	creator := createUser(t, users, "frank")
	viewer := createUser(t, users, "grace")

	require.NoError(t, channels.Subscribe(ctx, viewer.ID, creator.ID))
	require.NoError(t, channels.Subscribe(ctx, viewer.ID, creator.ID))

	profile, err := channels.GetChannelProfile(ctx, "frank", viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	_, err = channels.GetChannelProfile(ctx, "nobody", viewer.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, channels.Unsubscribe(ctx, viewer.ID, creator.ID))
	subscribed, err := channels.IsSubscribed(ctx, viewer.ID, creator.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	videoID := uuid.New()
	_, err = db.Collection(videosCollection).InsertOne(ctx, bson.D{
		{Key: "_id", Value: videoID.String()},
		{Key: "owner", Value: creator.ID.String()},
		{Key: "title", Value: "intro"},
		{Key: "createdAt", Value: time.Now().UTC()},
		{Key: "updatedAt", Value: time.Now().UTC()},
	})
	require.NoError(t, err)

	exists, err := channels.VideoExists(ctx, videoID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, videoID))
	require.NoError(t, users.AppendWatchHistory(ctx, viewer.ID, uuid.New()))

	history, err := channels.GetWatchHistory(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "intro", history[0].Title)
	require.NotNil(t, history[0].Owner)
	assert.Equal(t, "frank", history[0].Owner.Username)
}
