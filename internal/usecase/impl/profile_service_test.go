package impl

import (
	"context"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	userRepo    *mockRepo.MockUserRepository
	channelRepo *mockRepo.MockChannelRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	channelRepo := mockRepo.NewMockChannelRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			UserRepo:    userRepo,
			ChannelRepo: channelRepo,
			Logger:      newDiscardLogger(),
		}),
		userRepo:    userRepo,
		channelRepo: channelRepo,
	}
}

func TestProfileService_GetCurrentUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	alice := newTestUser("alice")
	alice.RefreshToken = "secret"

	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)

	user, err := fx.service.GetCurrentUser(ctx, alice.ID)

	require.NoError(t, err)
	assert.Equal(t, alice.Username, user.Username)
}

func TestProfileService_GetCurrentUser_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetCurrentUser(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateAccountDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes and stores", func(t *testing.T) {
		fx := createTestProfileService(t)
		alice := newTestUser("alice")
		updated := *alice
		updated.FullName = "Alice Liddell"
		updated.Email = "liddell@x.com"

		fx.userRepo.EXPECT().UpdateAccountDetails(ctx, alice.ID, "Alice Liddell", "liddell@x.com").Return(&updated, nil)

		user, err := fx.service.UpdateAccountDetails(ctx, &usecase.UpdateAccountInput{
			UserID:   alice.ID,
			FullName: " Alice Liddell ",
			Email:    "Liddell@X.com",
		})

		require.NoError(t, err)
		assert.Equal(t, "liddell@x.com", user.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestProfileService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().UpdateAccountDetails(ctx, id, "A", "bob@x.com").Return(nil, repository.ErrUserAlreadyExists)

		_, err := fx.service.UpdateAccountDetails(ctx, &usecase.UpdateAccountInput{UserID: id, FullName: "A", Email: "bob@x.com"})

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateAccountDetails(ctx, &usecase.UpdateAccountInput{UserID: uuid.New(), FullName: "A"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestProfileService_UpdateImages(t *testing.T) {
	ctx := context.Background()
	fx := createTestProfileService(t)
	alice := newTestUser("alice")

	withAvatar := *alice
	withAvatar.Avatar = "https://cdn.example.com/a.png"
	fx.userRepo.EXPECT().UpdateAvatar(ctx, alice.ID, withAvatar.Avatar).Return(&withAvatar, nil)

	withCover := *alice
	withCover.CoverImage = "https://cdn.example.com/c.png"
	fx.userRepo.EXPECT().UpdateCoverImage(ctx, alice.ID, withCover.CoverImage).Return(&withCover, nil)

	user, err := fx.service.UpdateAvatar(ctx, alice.ID, withAvatar.Avatar)
	require.NoError(t, err)
	assert.Equal(t, withAvatar.Avatar, user.Avatar)

	user, err = fx.service.UpdateCoverImage(ctx, alice.ID, withCover.CoverImage)
	require.NoError(t, err)
	assert.Equal(t, withCover.CoverImage, user.CoverImage)

	_, err = fx.service.UpdateAvatar(ctx, alice.ID, " ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.UpdateCoverImage(ctx, alice.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestProfileService_GetChannelProfile(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		profile := &entity.ChannelProfile{ID: uuid.New(), Username: "alice", SubscribersCount: 2, IsSubscribed: true}
		fx.channelRepo.EXPECT().GetChannelProfile(ctx, "alice", viewer).Return(profile, nil)

		got, err := fx.service.GetChannelProfile(ctx, "Alice", viewer)

		require.NoError(t, err)
		assert.Equal(t, profile, got)
	})

	t.Run("unknown channel", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.channelRepo.EXPECT().GetChannelProfile(ctx, "ghost", viewer).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetChannelProfile(ctx, "ghost", viewer)

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("blank username", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.GetChannelProfile(ctx, " ", viewer)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestProfileService_ToggleSubscription(t *testing.T) {
	ctx := context.Background()
	viewer := uuid.New()
	alice := newTestUser("alice")

	t.Run("subscribes", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
		fx.channelRepo.EXPECT().IsSubscribed(ctx, viewer, alice.ID).Return(false, nil)
		fx.channelRepo.EXPECT().Subscribe(ctx, viewer, alice.ID).Return(nil)

		out, err := fx.service.ToggleSubscription(ctx, viewer, "alice")

		require.NoError(t, err)
		assert.True(t, out.Subscribed)
		assert.Equal(t, alice.ID, out.ChannelID)
	})

	t.Run("unsubscribes", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)
		fx.channelRepo.EXPECT().IsSubscribed(ctx, viewer, alice.ID).Return(true, nil)
		fx.channelRepo.EXPECT().Unsubscribe(ctx, viewer, alice.ID).Return(nil)

		out, err := fx.service.ToggleSubscription(ctx, viewer, "alice")

		require.NoError(t, err)
		assert.False(t, out.Subscribed)
	})

	t.Run("own channel", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(alice, nil)

		_, err := fx.service.ToggleSubscription(ctx, alice.ID, "alice")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("unknown channel", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ToggleSubscription(ctx, viewer, "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

func TestProfileService_WatchHistory(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	t.Run("records existing video", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.channelRepo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
		fx.userRepo.EXPECT().AppendWatchHistory(ctx, userID, videoID).Return(nil)

		require.NoError(t, fx.service.RecordWatch(ctx, userID, videoID))
	})

	t.Run("unknown video", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.channelRepo.EXPECT().VideoExists(ctx, videoID).Return(false, nil)

		err := fx.service.RecordWatch(ctx, userID, videoID)

		assert.ErrorIs(t, err, domainerrors.ErrVideoNotFound)
	})

	t.Run("nil video id", func(t *testing.T) {
		fx := createTestProfileService(t)

		err := fx.service.RecordWatch(ctx, userID, uuid.Nil)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("lists history", func(t *testing.T) {
		fx := createTestProfileService(t)
		history := []*entity.WatchedVideo{
			{Video: entity.Video{ID: videoID, Title: "first"}, Owner: &entity.VideoOwner{Username: "alice"}},
		}
		fx.channelRepo.EXPECT().GetWatchHistory(ctx, userID).Return(history, nil)

		got, err := fx.service.GetWatchHistory(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, history, got)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.channelRepo.EXPECT().GetWatchHistory(ctx, userID).Return(nil, errors.New("timeout"))

		_, err := fx.service.GetWatchHistory(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrInternal)
	})
}
