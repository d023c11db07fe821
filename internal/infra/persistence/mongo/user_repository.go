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

type userRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(usersCollection),
		now:   time.Now,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (r *userRepository) FindByIdentifier(ctx context.Context, username, email string) (*entity.User, error) {
	var or bson.A
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return r.findOne(ctx, bson.D{{Key: "$or", Value: or}})
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "username", Value: username}})
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if _, err := r.users.InsertOne(ctx, newUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.WithStack(repository.ErrUserAlreadyExists)
		}

		return errors.Wrap(err, "failed to insert user")
	}

	return nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	var update bson.D
	if token == "" {
		update = bson.D{
			{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: r.now().UTC()}}},
		}
	} else {
		update = r.set(bson.E{Key: "refreshToken", Value: token})
	}

	return r.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
}

func (r *userRepository) RotateRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error {
	if expected == "" {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}

	// The filter on the old token makes the swap a compare-and-set.
	filter := bson.D{
		{Key: "_id", Value: id.String()},
		{Key: "refreshToken", Value: expected},
	}

	result, err := r.users.UpdateOne(ctx, filter, r.set(bson.E{Key: "refreshToken", Value: next}))
	if err != nil {
		return errors.Wrap(err, "failed to rotate refresh token")
	}
	if result.MatchedCount == 0 {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}

	return nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string, revokeSession bool) error {
	update := r.set(bson.E{Key: "password", Value: hash})
	if revokeSession {
		update = append(update, bson.E{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}})
	}

	return r.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
}

func (r *userRepository) UpdateAccountDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*entity.User, error) {
	return r.findOneAndSet(ctx, id,
		bson.E{Key: "fullName", Value: fullName},
		bson.E{Key: "email", Value: email},
	)
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*entity.User, error) {
	return r.findOneAndSet(ctx, id, bson.E{Key: "avatar", Value: url})
}

func (r *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*entity.User, error) {
	return r.findOneAndSet(ctx, id, bson.E{Key: "coverImage", Value: url})
}

func (r *userRepository) AppendWatchHistory(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error {
	vid := videoID.String()

	// Pipeline update: drop any earlier occurrence and append, in one atomic write.
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "watchHistory", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$watchHistory", bson.A{}}}}},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", vid}}}},
				}}},
				bson.A{vid},
			}}}},
			{Key: "updatedAt", Value: r.now().UTC()},
		}}},
	}

	return r.updateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, update)
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toEntity(), nil
}

func (r *userRepository) findOneAndSet(ctx context.Context, id uuid.UUID, fields ...bson.E) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err := r.users.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id.String()}}, r.set(fields...), opts).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, errors.WithStack(repository.ErrUserNotFound)
		case mongo.IsDuplicateKeyError(err):
			return nil, errors.WithStack(repository.ErrUserAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	return doc.toEntity(), nil
}

func (r *userRepository) updateOne(ctx context.Context, filter any, update any) error {
	result, err := r.users.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

// set builds a $set that also bumps updatedAt.
func (r *userRepository) set(fields ...bson.E) bson.D {
	doc := make(bson.D, 0, len(fields)+1)
	doc = append(doc, fields...)
	doc = append(doc, bson.E{Key: "updatedAt", Value: r.now().UTC()})

	return bson.D{{Key: "$set", Value: doc}}
}
