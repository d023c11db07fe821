// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenConfig carries everything a jwtService needs. Now defaults to time.Now.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Now           func() time.Time
}

// tokenClaims is the wire form of a token. Kind guards against a token being
// accepted by the wrong verifier even if secrets were ever misconfigured.
type tokenClaims struct {
	Kind entity.TokenKind `json:"typ"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256-signed JWTs.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewJWTService builds the token service from application configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	tokenCfg := TokenConfig{
		AccessSecret:  cfg.SecretKey.Access,
		RefreshSecret: cfg.SecretKey.Refresh,
	}
	if cfg.Auth != nil {
		tokenCfg.AccessTTL = cfg.Auth.AccessTokenTTL
		tokenCfg.RefreshTTL = cfg.Auth.RefreshTokenTTL
	}

	return NewJWTServiceWithConfig(tokenCfg)
}

// NewJWTServiceWithConfig validates cfg and returns a token service.
func NewJWTServiceWithConfig(cfg TokenConfig) (service.TokenService, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &jwtService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           cfg.Now,
	}, nil
}

func (s *jwtService) IssueAccessToken(subject uuid.UUID) (string, error) {
	token, _, err := s.sign(subject, entity.TokenKindAccess)
	return token, err
}

func (s *jwtService) IssueRefreshToken(subject uuid.UUID) (string, error) {
	token, _, err := s.sign(subject, entity.TokenKindRefresh)
	return token, err
}

// IssueTokenPair creates a new access token and refresh token for the given user.
func (s *jwtService) IssueTokenPair(subject uuid.UUID) (*entity.TokenPair, error) {
	accessToken, accessExp, err := s.sign(subject, entity.TokenKindAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExp, err := s.sign(subject, entity.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

func (s *jwtService) VerifyAccessToken(token string) (*service.TokenClaims, error) {
	return s.verify(token, entity.TokenKindAccess)
}

func (s *jwtService) VerifyRefreshToken(token string) (*service.TokenClaims, error) {
	return s.verify(token, entity.TokenKindRefresh)
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(subject uuid.UUID, kind entity.TokenKind) (string, time.Time, error) {
	if subject == uuid.Nil {
		return "", time.Time{}, errors.New("token subject must not be empty")
	}

	secret, ttl := s.keyFor(kind)
	issuedAt := s.now()
	expiresAt := issuedAt.Add(ttl)

	claims := tokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, expiresAt, nil
}

func (s *jwtService) verify(raw string, kind entity.TokenKind) (*service.TokenClaims, error) {
	secret, _ := s.keyFor(kind)
	claims := &tokenClaims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithStack(service.ErrTokenExpired)
		}

		return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	if claims.Kind != kind {
		return nil, errors.Wrapf(service.ErrTokenMalformed, "expected %s token, got %q", kind, claims.Kind)
	}
	if claims.Subject == "" {
		return nil, errors.WithStack(service.ErrTokenSubjectMissing)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrTokenMalformed, "subject is not a user identifier")
	}

	result := &service.TokenClaims{
		Subject: subject,
		Kind:    claims.Kind,
		ID:      claims.ID,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

func (s *jwtService) keyFor(kind entity.TokenKind) ([]byte, time.Duration) {
	if kind == entity.TokenKindRefresh {
		return s.refreshSecret, s.refreshTTL
	}

	return s.accessSecret, s.accessTTL
}
