package postgres

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"
	"vidtube/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type tweetRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewTweetRepository is the constructor for tweetRepository.
func NewTweetRepository(db *gorm.DB) repository.TweetRepository {
	return &tweetRepository{q: query.Use(db), now: time.Now}
}

func (repo *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	if tweet.ID == uuid.Nil {
		tweet.ID = uuid.New()
	}

	t := repo.q.TweetModel
	tweetM := &model.TweetModel{
		ID:      tweet.ID,
		OwnerID: tweet.OwnerID,
		Content: tweet.Content,
	}
	if err := t.WithContext(ctx).Omit(t.Owner.Field()).Create(tweetM); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to create tweet")
	}

	tweet.CreatedAt = tweetM.CreatedAt
	tweet.UpdatedAt = tweetM.UpdatedAt

	return nil
}

func (repo *tweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tweet, error) {
	t := repo.q.TweetModel

	tweetM, err := t.WithContext(ctx).Where(t.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrTweetNotFound)
		}

		return nil, errors.Wrap(err, "failed to find tweet")
	}

	return toTweetDomain(tweetM), nil
}

func (repo *tweetRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*entity.Tweet, error) {
	t := repo.q.TweetModel

	info, err := t.WithContext(ctx).
		Where(t.ID.Eq(id)).
		UpdateSimple(t.Content.Value(content), t.UpdatedAt.Value(repo.now()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update tweet")
	}
	if info.RowsAffected == 0 {
		return nil, errors.WithStack(repository.ErrTweetNotFound)
	}

	return repo.FindByID(ctx, id)
}

func (repo *tweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	t := repo.q.TweetModel

	info, err := t.WithContext(ctx).Where(t.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete tweet")
	}
	if info.RowsAffected == 0 {
		return errors.WithStack(repository.ErrTweetNotFound)
	}

	return nil
}

func (repo *tweetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.TweetView, error) {
	t := repo.q.TweetModel

	rows, err := t.WithContext(ctx).
		Preload(t.Owner).
		Where(t.OwnerID.Eq(ownerID)).
		Order(t.CreatedAt.Desc()).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tweets")
	}

	views := make([]*entity.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.TweetView{
			ID:        row.ID,
			Username:  row.Owner.Username,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return views, nil
}

func toTweetDomain(tweetM *model.TweetModel) *entity.Tweet {
	return &entity.Tweet{
		ID:        tweetM.ID,
		OwnerID:   tweetM.OwnerID,
		Content:   tweetM.Content,
		CreatedAt: tweetM.CreatedAt,
		UpdatedAt: tweetM.UpdatedAt,
	}
}
