package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// TweetUsecase defines tweet operations. Only the owner may change or delete a tweet.
type TweetUsecase interface {
	CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error)
	UpdateTweet(ctx context.Context, ownerID, tweetID uuid.UUID, content string) (*entity.Tweet, error)
	DeleteTweet(ctx context.Context, ownerID, tweetID uuid.UUID) error
	ListMyTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetView, error)
}
