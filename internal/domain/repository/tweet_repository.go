package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTweetNotFound is returned when a tweet does not exist.
var ErrTweetNotFound = errors.New("tweet not found")

// TweetRepository defines persistence operations for tweets.
type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByOwner returns the owner's tweets joined with the owner's username, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetView, error)
}
