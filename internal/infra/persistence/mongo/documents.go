package mongo

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// UUIDs are stored as their canonical string form in _id and reference fields.

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	FullName     string    `bson:"fullName"`
	Password     string    `bson:"password"`
	RefreshToken string    `bson:"refreshToken,omitempty"`
	Avatar       string    `bson:"avatar,omitempty"`
	CoverImage   string    `bson:"coverImage,omitempty"`
	WatchHistory []string  `bson:"watchHistory"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func newUserDocument(u *entity.User) *userDocument {
	history := make([]string, 0, len(u.WatchHistory))
	for _, id := range u.WatchHistory {
		history = append(history, id.String())
	}

	return &userDocument{
		ID:           u.ID.String(),
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Password:     u.PasswordHash,
		RefreshToken: u.RefreshToken,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		WatchHistory: history,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d *userDocument) toEntity() *entity.User {
	history := make([]uuid.UUID, 0, len(d.WatchHistory))
	for _, raw := range d.WatchHistory {
		if id, err := uuid.Parse(raw); err == nil {
			history = append(history, id)
		}
	}

	return &entity.User{
		ID:           parseID(d.ID),
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		PasswordHash: d.Password,
		RefreshToken: d.RefreshToken,
		Avatar:       d.Avatar,
		CoverImage:   d.CoverImage,
		WatchHistory: history,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type tweetDocument struct {
	ID        string    `bson:"_id"`
	Owner     string    `bson:"owner"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *tweetDocument) toEntity() *entity.Tweet {
	return &entity.Tweet{
		ID:        parseID(d.ID),
		OwnerID:   parseID(d.Owner),
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// tweetViewDocument is the projection produced by the tweet/owner $lookup.
type tweetViewDocument struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *tweetViewDocument) toEntity() *entity.TweetView {
	return &entity.TweetView{
		ID:        parseID(d.ID),
		Username:  d.Username,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type videoOwnerDocument struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	FullName string `bson:"fullName"`
	Avatar   string `bson:"avatar"`
}

// videoDocument doubles as the watch-history projection; Owner is filled by $lookup.
type videoDocument struct {
	ID          string              `bson:"_id"`
	OwnerID     string              `bson:"owner"`
	VideoFile   string              `bson:"videoFile"`
	Thumbnail   string              `bson:"thumbnail"`
	Title       string              `bson:"title"`
	Description string              `bson:"description"`
	Duration    float64             `bson:"duration"`
	Views       int64               `bson:"views"`
	IsPublished bool                `bson:"isPublished"`
	CreatedAt   time.Time           `bson:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt"`
	Owner       *videoOwnerDocument `bson:"ownerDetails,omitempty"`
}

func (d *videoDocument) toEntity() *entity.WatchedVideo {
	watched := &entity.WatchedVideo{
		Video: entity.Video{
			ID:          parseID(d.ID),
			OwnerID:     parseID(d.OwnerID),
			VideoFile:   d.VideoFile,
			Thumbnail:   d.Thumbnail,
			Title:       d.Title,
			Description: d.Description,
			Duration:    d.Duration,
			Views:       d.Views,
			IsPublished: d.IsPublished,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
		},
	}
	if d.Owner != nil {
		watched.Owner = &entity.VideoOwner{
			ID:       parseID(d.Owner.ID),
			Username: d.Owner.Username,
			FullName: d.Owner.FullName,
			Avatar:   d.Owner.Avatar,
		}
	}

	return watched
}

type subscriptionDocument struct {
	ID         string    `bson:"_id"`
	Subscriber string    `bson:"subscriber"`
	Channel    string    `bson:"channel"`
	CreatedAt  time.Time `bson:"createdAt"`
}

type channelProfileDocument struct {
	ID                        string `bson:"_id"`
	Username                  string `bson:"username"`
	FullName                  string `bson:"fullName"`
	Email                     string `bson:"email"`
	Avatar                    string `bson:"avatar"`
	CoverImage                string `bson:"coverImage"`
	SubscribersCount          int64  `bson:"subscribersCount"`
	ChannelsSubscribedToCount int64  `bson:"channelsSubscribedToCount"`
	IsSubscribed              bool   `bson:"isSubscribed"`
}

func (d *channelProfileDocument) toEntity() *entity.ChannelProfile {
	return &entity.ChannelProfile{
		ID:                        parseID(d.ID),
		Username:                  d.Username,
		FullName:                  d.FullName,
		Email:                     d.Email,
		Avatar:                    d.Avatar,
		CoverImage:                d.CoverImage,
		SubscribersCount:          d.SubscribersCount,
		ChannelsSubscribedToCount: d.ChannelsSubscribedToCount,
		IsSubscribed:              d.IsSubscribed,
	}
}

// parseID tolerates foreign data; a malformed id decodes as uuid.Nil.
func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}

	return id
}
