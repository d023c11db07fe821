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
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements repository.UserRepository using the GORM Gen query builder.
type userRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{q: query.Use(db), now: time.Now}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel

	return repo.findOne(ctx, u.ID.Eq(id))
}

func (repo *userRepository) FindByIdentifier(ctx context.Context, username, email string) (*entity.User, error) {
	u := repo.q.UserModel

	switch {
	case username != "" && email != "":
		return loadUser(u.WithContext(ctx).
			Preload(repo.orderedHistory()).
			Where(u.Username.Eq(username)).
			Or(u.Email.Eq(email)).
			First())
	case username != "":
		return repo.FindByUsername(ctx, username)
	case email != "":
		return repo.findOne(ctx, u.Email.Eq(email))
	default:
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}
}

func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := repo.q.UserModel

	return repo.findOne(ctx, u.Username.Eq(username))
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	userM := fromUserDomain(user)
	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserAlreadyExists)
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	return repo.updateColumns(ctx, id, repo.q.UserModel.RefreshToken.Value(token))
}

func (repo *userRepository) RotateRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error {
	if expected == "" {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}

	u := repo.q.UserModel

	// The predicate on the old token makes the swap a compare-and-set.
	info, err := u.WithContext(ctx).
		Where(u.ID.Eq(id), u.RefreshToken.Eq(expected)).
		UpdateSimple(u.RefreshToken.Value(next), u.UpdatedAt.Value(repo.now()))
	if err != nil {
		return errors.Wrap(err, "failed to rotate refresh token")
	}
	if info.RowsAffected == 0 {
		return errors.WithStack(repository.ErrRefreshTokenMismatch)
	}

	return nil
}

func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string, revokeSession bool) error {
	u := repo.q.UserModel

	columns := []field.AssignExpr{u.PasswordHash.Value(hash)}
	if revokeSession {
		columns = append(columns, u.RefreshToken.Value(""))
	}

	return repo.updateColumns(ctx, id, columns...)
}

func (repo *userRepository) UpdateAccountDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*entity.User, error) {
	u := repo.q.UserModel
	if err := repo.updateColumns(ctx, id, u.FullName.Value(fullName), u.Email.Value(email)); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*entity.User, error) {
	if err := repo.updateColumns(ctx, id, repo.q.UserModel.Avatar.Value(url)); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*entity.User, error) {
	if err := repo.updateColumns(ctx, id, repo.q.UserModel.CoverImage.Value(url)); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, id)
}

func (repo *userRepository) AppendWatchHistory(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error {
	entry := &model.WatchHistoryModel{UserID: id, VideoID: videoID, WatchedAt: repo.now()}

	// Re-watching an entry only bumps watched_at, which moves it to the end.
	err := repo.q.WatchHistoryModel.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watched_at"}),
		}).
		Create(entry)
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to append watch history")
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, conds ...gen.Condition) (*entity.User, error) {
	u := repo.q.UserModel

	return loadUser(u.WithContext(ctx).Preload(repo.orderedHistory()).Where(conds...).First())
}

// orderedHistory preloads watch history oldest first.
func (repo *userRepository) orderedHistory() field.RelationField {
	return repo.q.UserModel.WatchHistory.Order(repo.q.WatchHistoryModel.WatchedAt)
}

// updateColumns stamps updated_at and fails with ErrUserNotFound when no row matched.
func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns ...field.AssignExpr) error {
	u := repo.q.UserModel
	columns = append(columns, u.UpdatedAt.Value(repo.now()))

	info, err := u.WithContext(ctx).Where(u.ID.Eq(id)).UpdateSimple(columns...)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.WithStack(repository.ErrUserAlreadyExists)
		}

		return errors.Wrap(err, "failed to update user")
	}
	if info.RowsAffected == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

func loadUser(userM *model.UserModel, err error) (*entity.User, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithStack(repository.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(userM), nil
}

// fromUserDomain maps the entity to its row. Watch history lives in its own table.
func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: user.PasswordHash,
		RefreshToken: user.RefreshToken,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	history := make([]uuid.UUID, 0, len(userM.WatchHistory))
	for _, entry := range userM.WatchHistory {
		history = append(history, entry.VideoID)
	}

	return &entity.User{
		ID:           userM.ID,
		Username:     userM.Username,
		Email:        userM.Email,
		FullName:     userM.FullName,
		PasswordHash: userM.PasswordHash,
		RefreshToken: userM.RefreshToken,
		Avatar:       userM.Avatar,
		CoverImage:   userM.CoverImage,
		WatchHistory: history,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}
}
