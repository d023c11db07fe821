// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
// Avatar and CoverImage are optional, already-hosted URLs.
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     string
	CoverImage string
}

// LoginInput identifies the account by username or email. At least one is required.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// RefreshInput carries the refresh token presented by the client.
type RefreshInput struct {
	RefreshToken string
}

// ChangePasswordInput defines the data required to replace a password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens *entity.TokenPair
	User   *entity.PublicUser
}

// AuthUsecase moves a caller between anonymous, authenticated and revoked states.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.PublicUser, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authenticate resolves an access token to the user it was issued for.
	Authenticate(ctx context.Context, accessToken string) (*entity.PublicUser, error)

	// Refresh exchanges a refresh token for a new pair and rotates the stored token.
	Refresh(ctx context.Context, input *RefreshInput) (*entity.TokenPair, error)

	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
}
