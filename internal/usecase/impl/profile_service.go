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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo    repository.UserRepository
	channelRepo repository.ChannelRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ChannelRepo repository.ChannelRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		channelRepo: params.ChannelRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

func (srv *profileService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "failed to find user")
	}

	return user.Public(), nil
}

func (srv *profileService) UpdateAccountDetails(ctx context.Context, input *usecase.UpdateAccountInput) (*entity.PublicUser, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := entity.NormalizeEmail(input.Email)
	if fullName == "" || email == "" {
		return nil, domainerrors.InvalidInput("fullName and email are required")
	}

	user, err := srv.userRepo.UpdateAccountDetails(ctx, input.UserID, fullName, email)
	if err != nil {
		return nil, mapUserError(err, "failed to update account details")
	}

	srv.log(ctx).Info("Account details updated", slog.Any("userID", user.ID))

	return user.Public(), nil
}

func (srv *profileService) UpdateAvatar(ctx context.Context, userID uuid.UUID, url string) (*entity.PublicUser, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domainerrors.InvalidInput("avatar url is required")
	}

	user, err := srv.userRepo.UpdateAvatar(ctx, userID, url)
	if err != nil {
		return nil, mapUserError(err, "failed to update avatar")
	}

	return user.Public(), nil
}

func (srv *profileService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, url string) (*entity.PublicUser, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, domainerrors.InvalidInput("cover image url is required")
	}

	user, err := srv.userRepo.UpdateCoverImage(ctx, userID, url)
	if err != nil {
		return nil, mapUserError(err, "failed to update cover image")
	}

	return user.Public(), nil
}

// GetChannelProfile returns the aggregated channel page of username as seen by viewerID.
func (srv *profileService) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	username = entity.NormalizeUsername(username)
	if username == "" {
		return nil, domainerrors.InvalidInput("username is missing")
	}

	profile, err := srv.channelRepo.GetChannelProfile(ctx, username, viewerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("channel does not exist"))
	}
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to load channel profile")
	}

	return profile, nil
}

// ToggleSubscription subscribes the viewer to the channel, or unsubscribes if already subscribed.
func (srv *profileService) ToggleSubscription(ctx context.Context, viewerID uuid.UUID, channelUsername string) (*usecase.SubscriptionOutput, error) {
	username := entity.NormalizeUsername(channelUsername)
	if username == "" {
		return nil, domainerrors.InvalidInput("username is missing")
	}

	channel, err := srv.userRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("channel does not exist"))
	}
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to find channel")
	}

	if channel.ID == viewerID {
		return nil, domainerrors.InvalidInput("cannot subscribe to your own channel")
	}

	subscribed, err := srv.channelRepo.IsSubscribed(ctx, viewerID, channel.ID)
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to check subscription")
	}

	if subscribed {
		if err := srv.channelRepo.Unsubscribe(ctx, viewerID, channel.ID); err != nil {
			return nil, domainerrors.Internal(err, "failed to unsubscribe")
		}
	} else {
		if err := srv.channelRepo.Subscribe(ctx, viewerID, channel.ID); err != nil {
			return nil, domainerrors.Internal(err, "failed to subscribe")
		}
	}

	srv.log(ctx).Debug("Subscription toggled",
		slog.Any("subscriberID", viewerID),
		slog.Any("channelID", channel.ID),
		slog.Bool("subscribed", !subscribed),
	)

	return &usecase.SubscriptionOutput{ChannelID: channel.ID, Subscribed: !subscribed}, nil
}

func (srv *profileService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchedVideo, error) {
	history, err := srv.channelRepo.GetWatchHistory(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "failed to load watch history")
	}

	return history, nil
}

// RecordWatch appends videoID to the user's history, moving it to the end when already present.
func (srv *profileService) RecordWatch(ctx context.Context, userID, videoID uuid.UUID) error {
	if videoID == uuid.Nil {
		return domainerrors.InvalidInput("video id is required")
	}

	exists, err := srv.channelRepo.VideoExists(ctx, videoID)
	if err != nil {
		return domainerrors.Internal(err, "failed to look up video")
	}
	if !exists {
		return errors.WithStack(domainerrors.ErrVideoNotFound)
	}

	if err := srv.userRepo.AppendWatchHistory(ctx, userID, videoID); err != nil {
		return mapUserError(err, "failed to record watch")
	}

	return nil
}

// mapUserError translates repository user errors to their domain counterparts.
func mapUserError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.WithStack(domainerrors.ErrUserNotFound)
	case errors.Is(err, repository.ErrUserAlreadyExists):
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	default:
		return domainerrors.Internal(err, message)
	}
}
