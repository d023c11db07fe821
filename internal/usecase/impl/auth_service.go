// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once and checked against on unknown identifiers so that
// a missing account costs the same as a wrong password.
const dummyPassword = "vidtube-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	limiter      service.LoginLimiter
	metrics      service.AuthMetrics
	logger       *slog.Logger

	revokeOnPasswordChange bool

	dummyOnce sync.Once
	dummyHash string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Limiter      service.LoginLimiter
	Metrics      service.AuthMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	revoke := false
	if params.Config != nil && params.Config.Auth != nil {
		revoke = params.Config.Auth.RevokeSessionsOnPasswordChange
	}

	return &authService{
		userRepo:               params.UserRepo,
		hasher:                 params.Hasher,
		tokenService:           params.TokenService,
		limiter:                params.Limiter,
		metrics:                params.Metrics,
		logger:                 params.Logger,
		revokeOnPasswordChange: revoke,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Register creates an account after checking that neither handle is taken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.PublicUser, error) {
	username := entity.NormalizeUsername(input.Username)
	email := entity.NormalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)

	if username == "" || email == "" || fullName == "" || strings.TrimSpace(input.Password) == "" {
		return nil, domainerrors.InvalidInput("all fields are required")
	}
	if err := srv.validatePassword(ctx, input.Password); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	existing, err := srv.userRepo.FindByIdentifier(ctx, username, email)
	switch {
	case err == nil && existing != nil:
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	case err != nil && !errors.Is(err, repository.ErrUserNotFound):
		return nil, domainerrors.Internal(err, "failed to look up existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.Internal(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Avatar:       strings.TrimSpace(input.Avatar),
		CoverImage:   strings.TrimSpace(input.CoverImage),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, domainerrors.Internal(err, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user.Public(), nil
}

// Login verifies the credential and starts a session by persisting a fresh refresh token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := entity.NormalizeUsername(input.Username)
	email := entity.NormalizeEmail(input.Email)

	if username == "" && email == "" {
		return nil, domainerrors.InvalidInput("username or email is required")
	}
	if input.Password == "" {
		return nil, domainerrors.InvalidInput("password is required")
	}

	key := throttleKey(username, email)

	allowed, err := srv.limiter.Allow(ctx, key)
	if err != nil {
		srv.metrics.LoginAttempt(service.OutcomeError)
		srv.log(ctx).Error("Login throttle check failed", slog.Any("error", err))

		return nil, domainerrors.Internal(err, "failed to check login throttle")
	}
	if !allowed {
		srv.metrics.LoginAttempt(service.OutcomeThrottled)
		srv.log(ctx).Warn("Login throttled", slog.String("identifier", key))

		return nil, errors.WithStack(domainerrors.ErrTooManyAttempts)
	}

	user, err := srv.userRepo.FindByIdentifier(ctx, username, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.timingHash())

		return nil, srv.rejectLogin(ctx, key)
	}
	if err != nil {
		srv.metrics.LoginAttempt(service.OutcomeError)

		return nil, domainerrors.Internal(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, srv.rejectLogin(ctx, key)
	}

	tokens, err := srv.startSession(ctx, user)
	if err != nil {
		srv.metrics.LoginAttempt(service.OutcomeError)

		return nil, err
	}

	if err := srv.limiter.Reset(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to reset login throttle", slog.Any("error", err))
	}

	srv.metrics.LoginAttempt(service.OutcomeSuccess)
	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Tokens: tokens, User: user.Public()}, nil
}

// startSession mints a pair and stores its refresh half, replacing any previous session.
func (srv *authService) startSession(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	tokens, err := srv.tokenService.IssueTokenPair(user.ID)
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to issue tokens")
	}

	if err := srv.userRepo.UpdateRefreshToken(ctx, user.ID, tokens.RefreshToken); err != nil {
		return nil, domainerrors.Internal(err, "failed to store refresh token")
	}

	user.RefreshToken = tokens.RefreshToken
	srv.metrics.TokensIssued()

	return tokens, nil
}

func (srv *authService) rejectLogin(ctx context.Context, key string) error {
	if err := srv.limiter.RecordFailure(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to record login failure", slog.Any("error", err))
	}

	srv.metrics.LoginAttempt(service.OutcomeInvalidCredential)
	srv.log(ctx).Info("Login rejected", slog.String("identifier", key))

	return errors.WithStack(domainerrors.ErrInvalidCredentials)
}

// timingHash returns a valid hash of dummyPassword, computed on first use.
func (srv *authService) timingHash() string {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

// Authenticate resolves an access token to its user. Every failure is ErrUnauthorized.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.PublicUser, error) {
	if accessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	claims, err := srv.tokenService.VerifyAccessToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Access token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if err != nil {
		return nil, domainerrors.Internal(err, "failed to load authenticated user")
	}

	return user.Public(), nil
}

// Refresh validates the presented refresh token against the stored one and rotates it.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*entity.TokenPair, error) {
	presented := strings.TrimSpace(input.RefreshToken)
	if presented == "" {
		srv.metrics.RefreshAttempt(service.OutcomeUnauthorized)

		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	claims, err := srv.tokenService.VerifyRefreshToken(presented)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, srv.rejectRefresh()
	}

	user, err := srv.userRepo.FindByID(ctx, claims.Subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, srv.rejectRefresh()
	}
	if err != nil {
		srv.metrics.RefreshAttempt(service.OutcomeError)

		return nil, domainerrors.Internal(err, "failed to load user for refresh")
	}

	if user.RefreshToken == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(user.RefreshToken)) != 1 {
		srv.log(ctx).Warn("Refresh token is expired or used", slog.Any("userID", user.ID))

		return nil, srv.rejectRefresh()
	}

	tokens, err := srv.tokenService.IssueTokenPair(user.ID)
	if err != nil {
		srv.metrics.RefreshAttempt(service.OutcomeError)

		return nil, domainerrors.Internal(err, "failed to issue tokens")
	}

	err = srv.userRepo.RotateRefreshToken(ctx, user.ID, presented, tokens.RefreshToken)
	if errors.Is(err, repository.ErrRefreshTokenMismatch) || errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Refresh token rotated concurrently", slog.Any("userID", user.ID))

		return nil, srv.rejectRefresh()
	}
	if err != nil {
		srv.metrics.RefreshAttempt(service.OutcomeError)

		return nil, domainerrors.Internal(err, "failed to rotate refresh token")
	}

	srv.metrics.TokensIssued()
	srv.metrics.RefreshAttempt(service.OutcomeSuccess)

	return tokens, nil
}

func (srv *authService) rejectRefresh() error {
	srv.metrics.RefreshAttempt(service.OutcomeUnauthorized)

	return errors.WithStack(domainerrors.ErrUnauthorized)
}

// Logout clears the stored refresh token. Logging out twice is not an error.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := srv.userRepo.UpdateRefreshToken(ctx, userID, "")
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.Internal(err, "failed to clear refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// ChangePassword replaces the password hash after verifying the old password.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return domainerrors.InvalidInput("old and new password are required")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return domainerrors.Internal(err, "failed to find user")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Info("Password change rejected", slog.Any("userID", user.ID))

		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if err := srv.validatePassword(ctx, input.NewPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.Internal(err, "failed to hash password")
	}

	// Hash and session revocation land in one write; a failure leaves both untouched.
	err = srv.userRepo.UpdatePasswordHash(ctx, user.ID, hash, srv.revokeOnPasswordChange)
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return domainerrors.Internal(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

// validatePassword turns a hasher policy failure into an input error.
func (srv *authService) validatePassword(ctx context.Context, password string) error {
	err := srv.hasher.ValidatePasswordStrength(password)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrPasswordTooLong):
		return domainerrors.InvalidInput(fmt.Sprintf("password must be at most %d bytes", service.MaxPasswordBytes))
	case errors.Is(err, service.ErrPasswordEmpty):
		return domainerrors.InvalidInput("password is required")
	default:
		srv.log(ctx).Warn("Password validation failed", slog.Any("error", err))

		return domainerrors.InvalidInput("password does not meet security requirements")
	}
}

// throttleKey picks the identifier the client actually presented.
func throttleKey(username, email string) string {
	if username != "" {
		return username
	}

	return email
}
