package service

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Token verification failures. Callers in the session flow collapse all of them to
// an unauthorized response; they stay distinct for logging and metrics.
var (
	// ErrTokenExpired is returned when the expiry claim is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed is returned when the signature does not verify or the token cannot be parsed.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenSubjectMissing is returned when a verified token carries no subject.
	ErrTokenSubjectMissing = errors.New("token subject missing")
)

// TokenClaims is what a verified token tells us.
type TokenClaims struct {
	Subject   uuid.UUID
	Kind      entity.TokenKind
	ID        string // Unique per minted token.
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer mints signed, time-bounded tokens carrying a user identifier.
// It has no side effects; persisting the refresh token is the caller's job.
type TokenIssuer interface {
	// IssueAccessToken signs a short-lived token with the access secret.
	IssueAccessToken(subject uuid.UUID) (string, error)

	// IssueRefreshToken signs a long-lived token with the refresh secret.
	IssueRefreshToken(subject uuid.UUID) (string, error)

	// IssueTokenPair mints both tokens for the same subject.
	IssueTokenPair(subject uuid.UUID) (*entity.TokenPair, error)
}

// TokenVerifier validates signature and expiry and extracts claims.
type TokenVerifier interface {
	// VerifyAccessToken checks the token against the access secret.
	VerifyAccessToken(token string) (*TokenClaims, error)

	// VerifyRefreshToken checks the token against the refresh secret.
	VerifyRefreshToken(token string) (*TokenClaims, error)
}

// TokenService is both halves, as implemented by a single signer.
type TokenService interface {
	TokenIssuer
	TokenVerifier

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured lifetime of refresh tokens.
	RefreshTokenTTL() time.Duration
}
