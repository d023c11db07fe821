package mongo

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type channelRepository struct {
	users         *mongo.Collection
	videos        *mongo.Collection
	subscriptions *mongo.Collection
	now           func() time.Time
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *mongo.Database) repository.ChannelRepository {
	return &channelRepository{
		users:         db.Collection(usersCollection),
		videos:        db.Collection(videosCollection),
		subscriptions: db.Collection(subscriptionsCollection),
		now:           time.Now,
	}
}

func (r *channelRepository) GetChannelProfile(ctx context.Context, username string, viewerID uuid.UUID) (*entity.ChannelProfile, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: subscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewerID.String(), "$subscribers.subscriber"}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}}},
	}

	cursor, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate channel profile")
	}

	var docs []channelProfileDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode channel profile")
	}
	if len(docs) == 0 {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return docs[0].toEntity(), nil
}

func (r *channelRepository) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchedVideo, error) {
	var user userDocument
	if err := r.users.FindOne(ctx, bson.D{{Key: "_id", Value: userID.String()}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if len(user.WatchHistory) == 0 {
		return []*entity.WatchedVideo{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: user.WatchHistory}}}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDetails"},
			{Key: "pipeline", Value: mongo.Pipeline{
				{{Key: "$project", Value: bson.D{
					{Key: "username", Value: 1},
					{Key: "fullName", Value: 1},
					{Key: "avatar", Value: 1},
				}}},
			}},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$ownerDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := r.videos.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate watch history")
	}

	var docs []videoDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode watch history")
	}

	byID := make(map[string]*videoDocument, len(docs))
	for i := range docs {
		byID[docs[i].ID] = &docs[i]
	}

	// $in does not preserve order; restore watch order here.
	history := make([]*entity.WatchedVideo, 0, len(docs))
	for _, id := range user.WatchHistory {
		if doc, ok := byID[id]; ok {
			history = append(history, doc.toEntity())
		}
	}

	return history, nil
}

func (r *channelRepository) VideoExists(ctx context.Context, videoID uuid.UUID) (bool, error) {
	count, err := r.videos.CountDocuments(ctx, bson.D{{Key: "_id", Value: videoID.String()}})
	if err != nil {
		return false, errors.Wrap(err, "failed to count videos")
	}

	return count > 0, nil
}

func (r *channelRepository) IsSubscribed(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	count, err := r.subscriptions.CountDocuments(ctx, subscriptionFilter(subscriberID, channelID))
	if err != nil {
		return false, errors.Wrap(err, "failed to count subscriptions")
	}

	return count > 0, nil
}

func (r *channelRepository) Subscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	doc := subscriptionDocument{
		ID:         uuid.NewString(),
		Subscriber: subscriberID.String(),
		Channel:    channelID.String(),
		CreatedAt:  r.now().UTC(),
	}

	if _, err := r.subscriptions.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}

		return errors.Wrap(err, "failed to insert subscription")
	}

	return nil
}

func (r *channelRepository) Unsubscribe(ctx context.Context, subscriberID, channelID uuid.UUID) error {
	if _, err := r.subscriptions.DeleteOne(ctx, subscriptionFilter(subscriberID, channelID)); err != nil {
		return errors.Wrap(err, "failed to delete subscription")
	}

	return nil
}

func subscriptionFilter(subscriberID, channelID uuid.UUID) bson.D {
	return bson.D{
		{Key: "subscriber", Value: subscriberID.String()},
		{Key: "channel", Value: channelID.String()},
	}
}
