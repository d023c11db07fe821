package postgres

import (
	"context"
	"database/sql/driver"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"
	"vidtube/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type channelRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewChannelRepository is the constructor for channelRepository.
func NewChannelRepository(db *gorm.DB) repository.ChannelRepository {
	return &channelRepository{q: query.Use(db), now: time.Now}
}

func (repo *channelRepository) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	u, s := repo.q.UserModel, repo.q.SubscriptionModel

	userM, err := u.WithContext(ctx).Where(u.Username.Eq(username)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load channel profile")
	}

	subscribers, err := s.WithContext(ctx).Where(s.ChannelID.Eq(userM.ID)).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscribers")
	}

	subscribedTo, err := s.WithContext(ctx).Where(s.SubscriberID.Eq(userM.ID)).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count subscriptions")
	}

	isSubscribed, err := repo.IsSubscribed(ctx, viewerID, userM.ID)
	if err != nil {
		return nil, err
	}

	return &entity.ChannelProfile{
		ID:                        userM.ID,
		Username:                  userM.Username,
		FullName:                  userM.FullName,
		Email:                     userM.Email,
		Avatar:                    userM.Avatar,
		CoverImage:                userM.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

// GetWatchHistory resolves the user's history oldest first. Entries whose
// video is gone are skipped; a video whose owner is gone has a nil Owner.
func (repo *channelRepository) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchedVideo, error) {
	u, wh, v := repo.q.UserModel, repo.q.WatchHistoryModel, repo.q.VideoModel

	count, err := u.WithContext(ctx).Where(u.ID.Eq(userID)).Count()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if count == 0 {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	entries, err := wh.WithContext(ctx).Where(wh.UserID.Eq(userID)).Order(wh.WatchedAt).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}
	if len(entries) == 0 {
		return []*entity.WatchedVideo{}, nil
	}

	videoIDs := make([]driver.Valuer, 0, len(entries))
	for _, entry := range entries {
		videoIDs = append(videoIDs, entry.VideoID)
	}

	videos, err := v.WithContext(ctx).Where(v.ID.In(videoIDs...)).Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watched videos")
	}

	videoByID := make(map[uuid.UUID]*model.VideoModel, len(videos))
	ownerIDs := make([]driver.Valuer, 0, len(videos))
	for _, video := range videos {
		videoByID[video.ID] = video
		ownerIDs = append(ownerIDs, video.OwnerID)
	}

	ownerByID := map[uuid.UUID]*model.UserModel{}
	if len(ownerIDs) > 0 {
		owners, err := u.WithContext(ctx).Where(u.ID.In(ownerIDs...)).Find()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load video owners")
		}
		for _, owner := range owners {
			ownerByID[owner.ID] = owner
		}
	}

	history := make([]*entity.WatchedVideo, 0, len(entries))
	for _, entry := range entries {
		video, ok := videoByID[entry.VideoID]
		if !ok {
			continue
		}

		history = append(history, toWatchedVideo(video, ownerByID[video.OwnerID]))
	}

	return history, nil
}

func (repo *channelRepository) VideoExists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	v := repo.q.VideoModel

	count, err := v.WithContext(ctx).Where(v.ID.Eq(videoID)).Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to count videos")
	}

	return count > 0, nil
}

func (repo *channelRepository) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	s := repo.q.SubscriptionModel

	count, err := s.WithContext(ctx).
		Where(s.SubscriberID.Eq(subscriberID), s.ChannelID.Eq(channelID)).
		Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to count subscriptions")
	}

	return count > 0, nil
}

func (repo *channelRepository) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	sub := &model.SubscriptionModel{
		ID:           uuid.New(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
		CreatedAt:    repo.now(),
	}

	err := repo.q.SubscriptionModel.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}

	return nil
}

func (repo *channelRepository) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	s := repo.q.SubscriptionModel

	_, err := s.WithContext(ctx).
		Where(s.SubscriberID.Eq(subscriberID), s.ChannelID.Eq(channelID)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to unsubscribe")
	}

	return nil
}

func toWatchedVideo(video *model.VideoModel, owner *model.UserModel) *entity.WatchedVideo {
	watched := &entity.WatchedVideo{
		Video: entity.Video{
			ID:          video.ID,
			OwnerID:     video.OwnerID,
			VideoFile:   video.VideoFile,
			Thumbnail:   video.Thumbnail,
			Title:       video.Title,
			Description: video.Description,
			Duration:    video.Duration,
			Views:       video.Views,
			IsPublished: video.IsPublished,
			CreatedAt:   video.CreatedAt,
			UpdatedAt:   video.UpdatedAt,
		},
	}
	if owner != nil {
		watched.Owner = &entity.VideoOwner{
			ID:       owner.ID,
			Username: owner.Username,
			FullName: owner.FullName,
			Avatar:   owner.Avatar,
		}
	}

	return watched
}
