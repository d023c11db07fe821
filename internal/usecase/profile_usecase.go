package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateAccountInput defines the editable account fields. Both are required.
type UpdateAccountInput struct {
	UserID   uuid.UUID
	FullName string
	Email    string
}

// SubscriptionOutput reports the state after a subscription toggle.
type SubscriptionOutput struct {
	ChannelID  uuid.UUID `json:"channelId"`
	Subscribed bool      `json:"subscribed"`
}

// ProfileUsecase covers account, channel and watch-history operations of a signed-in user.
type ProfileUsecase interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error)
	UpdateAccountDetails(ctx context.Context, input *UpdateAccountInput) (*entity.PublicUser, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, url string) (*entity.PublicUser, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, url string) (*entity.PublicUser, error)

	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)
	ToggleSubscription(ctx context.Context, viewerID uuid.UUID, channelUsername string) (*SubscriptionOutput, error)

	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchedVideo, error)
	RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error
}
