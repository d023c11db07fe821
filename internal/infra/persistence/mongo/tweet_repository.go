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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type tweetRepository struct {
	tweets *mongo.Collection
	now    func() time.Time
}

// NewTweetRepository creates a new tweet repository
func NewTweetRepository(db *mongo.Database) repository.TweetRepository {
	return &tweetRepository{
		tweets: db.Collection(tweetsCollection),
		now:    time.Now,
	}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	if tweet.ID == uuid.Nil {
		tweet.ID = uuid.New()
	}
	now := r.now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	doc := tweetDocument{
		ID:        tweet.ID.String(),
		Owner:     tweet.OwnerID.String(),
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
	}
	if _, err := r.tweets.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert tweet")
	}

	return nil
}

func (r *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	var doc tweetDocument
	if err := r.tweets.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(repository.ErrTweetNotFound)
		}

		return nil, errors.Wrap(err, "failed to find tweet")
	}

	return doc.toEntity(), nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Tweet, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: r.now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc tweetDocument
	if err := r.tweets.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id.String()}}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(repository.ErrTweetNotFound)
		}

		return nil, errors.Wrap(err, "failed to update tweet")
	}

	return doc.toEntity(), nil
}

func (r *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.tweets.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return errors.Wrap(err, "failed to delete tweet")
	}
	if result.DeletedCount == 0 {
		return errors.WithStack(repository.ErrTweetNotFound)
	}

	return nil
}

func (r *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetView, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: ownerID.String()}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "ownerDetails"},
		}}},
		{{Key: "$unwind", Value: "$ownerDetails"}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "username", Value: "$ownerDetails.username"},
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
		}}},
	}

	cursor, err := r.tweets.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tweets")
	}

	var docs []tweetViewDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode tweets")
	}

	views := make([]*entity.TweetView, 0, len(docs))
	for i := range docs {
		views = append(views, docs[i].toEntity())
	}

	return views, nil
}
