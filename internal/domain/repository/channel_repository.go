package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVideoNotFound is returned when a video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// ChannelRepository covers the aggregation-style reads behind channel pages and
// watch history, plus the subscription edges they count.
type ChannelRepository interface {
	// GetChannelProfile aggregates the channel owned by username as seen by viewerID.
	GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error)

	// GetWatchHistory returns the user's watched videos joined with their owners,
	// in watch-history order. Videos that no longer exist are skipped.
	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchedVideo, error)

	// VideoExists reports whether a video with the given ID exists.
	VideoExists(ctx context.Context, videoID uuid.UUID) (bool, error)

	// IsSubscribed reports whether subscriberID follows channelID.
	IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// Subscribe records the subscription edge. It is a no-op when the edge exists.
	Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error

	// Unsubscribe removes the subscription edge. It is a no-op when the edge is absent.
	Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error
}
