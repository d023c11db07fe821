// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for credential persistence.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a username or email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrRefreshTokenMismatch is returned by RotateRefreshToken when the stored
	// token is no longer the one the caller expected to replace.
	ErrRefreshTokenMismatch = errors.New("stored refresh token does not match")
)

// UserRepository is the credential store. Every method is atomic on a single user record.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIdentifier retrieves the user whose username equals username or whose
	// email equals email. Empty arguments are ignored; both empty yields ErrUserNotFound.
	FindByIdentifier(ctx context.Context, username, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their normalized username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. It fills in ID and timestamps when they are zero.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken overwrites the stored refresh token. An empty token clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// RotateRefreshToken replaces the stored refresh token with next only if it still
	// equals expected, returning ErrRefreshTokenMismatch otherwise.
	RotateRefreshToken(ctx context.Context, id uuid.UUID, expected, next string) error

	// UpdatePasswordHash overwrites the stored password hash. With revokeSession set
	// the stored refresh token is cleared by the same write.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string, revokeSession bool) error

	// UpdateAccountDetails sets the display name and email, returning the updated user.
	UpdateAccountDetails(ctx context.Context, id uuid.UUID, fullName, email string) (*entity.User, error)

	// UpdateAvatar sets the avatar URL, returning the updated user.
	UpdateAvatar(ctx context.Context, id uuid.UUID, url string) (*entity.User, error)

	// UpdateCoverImage sets the cover image URL, returning the updated user.
	UpdateCoverImage(ctx context.Context, id uuid.UUID, url string) (*entity.User, error)

	// AppendWatchHistory moves videoID to the end of the user's watch history.
	AppendWatchHistory(ctx context.Context, id uuid.UUID, videoID uuid.UUID) error
}
