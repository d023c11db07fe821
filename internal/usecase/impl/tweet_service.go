package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type tweetService struct {
	tweetRepo repository.TweetRepository
	logger    *slog.Logger
}

// TweetServiceParams holds dependencies for TweetService, injected by Fx.
type TweetServiceParams struct {
	fx.In

	TweetRepo repository.TweetRepository
	Logger    *slog.Logger
}

// NewTweetService is the constructor for tweetService.
func NewTweetService(params TweetServiceParams) usecase.TweetUsecase {
	return &tweetService{
		tweetRepo: params.TweetRepo,
		logger:    params.Logger,
	}
}

func (srv *tweetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *tweetService) CreateTweet(ctx context.Context, ownerID uuid.UUID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.InvalidInput("content is required")
	}

	tweet := &entity.Tweet{OwnerID: ownerID, Content: content}
	if err := srv.tweetRepo.Create(ctx, tweet); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, domainerrors.Internal(err, "failed to create tweet")
	}

	srv.log(ctx).Debug("Tweet created", slog.Any("tweetID", tweet.ID))

	return tweet, nil
}

func (srv *tweetService) UpdateTweet(ctx context.Context, ownerID, tweetID uuid.UUID, content string) (*entity.Tweet, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.InvalidInput("content is required")
	}

	if _, err := srv.ownedTweet(ctx, ownerID, tweetID); err != nil {
		return nil, err
	}

	tweet, err := srv.tweetRepo.UpdateContent(ctx, tweetID, content)
	if errors.Is(err, repository.ErrTweetNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTweetNotFound)
	}
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to update tweet")
	}

	return tweet, nil
}

func (srv *tweetService) DeleteTweet(ctx context.Context, ownerID, tweetID uuid.UUID) error {
	if _, err := srv.ownedTweet(ctx, ownerID, tweetID); err != nil {
		return err
	}

	err := srv.tweetRepo.Delete(ctx, tweetID)
	if errors.Is(err, repository.ErrTweetNotFound) {
		return errors.WithStack(domainerrors.ErrTweetNotFound)
	}
	if err != nil {
		return domainerrors.Internal(err, "failed to delete tweet")
	}

	srv.log(ctx).Debug("Tweet deleted", slog.Any("tweetID", tweetID))

	return nil
}

// ListMyTweets returns the owner's tweets, newest first. An empty list is ErrTweetNotFound.
func (srv *tweetService) ListMyTweets(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetView, error) {
	tweets, err := srv.tweetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to list tweets")
	}
	if len(tweets) == 0 {
		return nil, errors.WithStack(domainerrors.ErrTweetNotFound.WithDetails("no tweets found"))
	}

	return tweets, nil
}

// ownedTweet loads tweetID and checks that ownerID owns it.
func (srv *tweetService) ownedTweet(ctx context.Context, ownerID, tweetID uuid.UUID) (*entity.Tweet, error) {
	tweet, err := srv.tweetRepo.FindByID(ctx, tweetID)
	if errors.Is(err, repository.ErrTweetNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTweetNotFound)
	}
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to find tweet")
	}

	if tweet.OwnerID != ownerID {
		srv.log(ctx).Warn("Tweet access denied", slog.Any("tweetID", tweetID), slog.Any("userID", ownerID))

		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("only the owner can modify this tweet"))
	}

	return tweet, nil
}
