package impl

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	limiter      *mockSvc.MockLoginLimiter
	metrics      *mockSvc.MockAuthMetrics
}

func createTestAuthService(t *testing.T, revokeOnPasswordChange bool) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	limiter := mockSvc.NewMockLoginLimiter(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Limiter:      limiter,
		Metrics:      metrics,
		Config:       newTestConfig(revokeOnPasswordChange),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		limiter:      limiter,
		metrics:      metrics,
	}
}

func newTestPair(suffix string) *entity.TokenPair {
	now := time.Now()

	return &entity.TokenPair{
		AccessToken:      "access-" + suffix,
		RefreshToken:     "refresh-" + suffix,
		AccessExpiresAt:  now.Add(time.Hour),
		RefreshExpiresAt: now.Add(24 * time.Hour),
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("P@ss1").Return(nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("P@ss1").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "  Alice ",
		Email:    "ALICE@x.com",
		FullName: "Alice",
		Password: "P@ss1",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x.com", user.Email)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	fx := createTestAuthService(t, false)

	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"missing username", usecase.RegisterInput{Email: "a@x.com", FullName: "A", Password: "p"}},
		{"missing email", usecase.RegisterInput{Username: "a", FullName: "A", Password: "p"}},
		{"blank full name", usecase.RegisterInput{Username: "a", Email: "a@x.com", FullName: "  ", Password: "p"}},
		{"blank password", usecase.RegisterInput{Username: "a", Email: "a@x.com", FullName: "A", Password: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(context.Background(), &tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestAuthService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestAuthService(t, false)
	password := strings.Repeat("a", 100)

	fx.hasher.EXPECT().ValidatePasswordStrength(password).Return(errors.WithStack(service.ErrPasswordTooLong))

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice",
		Password: password,
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("P@ss1").Return(nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "alice@x.com").Return(newTestUser("alice"), nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice",
		Password: "P@ss1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_CreateRace(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("P@ss1").Return(nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "alice@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("P@ss1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserAlreadyExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice",
		Password: "P@ss1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.hasher.EXPECT().ValidatePasswordStrength("P@ss1").Return(nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "alice@x.com").Return(nil, storeErr)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@x.com",
		FullName: "Alice",
		Password: "P@ss1",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInternal)
	assert.ErrorIs(t, err, storeErr)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	alice := newTestUser("alice")
	pair := newTestPair("1")

	fx.limiter.EXPECT().Allow(ctx, "alice").Return(true, nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "").Return(alice, nil)
	fx.hasher.EXPECT().Check("P@ss1", alice.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssueTokenPair(alice.ID).Return(pair, nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, alice.ID, pair.RefreshToken).Return(nil)
	fx.limiter.EXPECT().Reset(ctx, "alice").Return(nil)
	fx.metrics.EXPECT().TokensIssued().Return()
	fx.metrics.EXPECT().LoginAttempt(service.OutcomeSuccess).Return()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "Alice", Password: "P@ss1"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.Equal(t, alice.ID, out.User.ID)

	body, err := json.Marshal(out.User)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
	assert.NotContains(t, string(body), "refreshToken")
	assert.NotContains(t, string(body), pair.RefreshToken)
}

func TestAuthService_Login_ByEmail(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	alice := newTestUser("alice")
	pair := newTestPair("1")

	fx.limiter.EXPECT().Allow(ctx, "alice@x.com").Return(true, nil)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "", "alice@x.com").Return(alice, nil)
	fx.hasher.EXPECT().Check("P@ss1", alice.PasswordHash).Return(true)
	fx.tokenService.EXPECT().IssueTokenPair(alice.ID).Return(pair, nil)
	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, alice.ID, pair.RefreshToken).Return(nil)
	fx.limiter.EXPECT().Reset(ctx, "alice@x.com").Return(nil)
	fx.metrics.EXPECT().TokensIssued().Return()
	fx.metrics.EXPECT().LoginAttempt(service.OutcomeSuccess).Return()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "Alice@X.com", Password: "P@ss1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)
}

func TestAuthService_Login_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	ctx := context.Background()

	fxWrong := createTestAuthService(t, false)
	alice := newTestUser("alice")
	fxWrong.limiter.EXPECT().Allow(ctx, "alice").Return(true, nil)
	fxWrong.userRepo.EXPECT().FindByIdentifier(ctx, "alice", "").Return(alice, nil)
	fxWrong.hasher.EXPECT().Check("wrong", alice.PasswordHash).Return(false)
	fxWrong.limiter.EXPECT().RecordFailure(ctx, "alice").Return(nil)
	fxWrong.metrics.EXPECT().LoginAttempt(service.OutcomeInvalidCredential).Return()

	_, wrongErr := fxWrong.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	fxUnknown := createTestAuthService(t, false)
	fxUnknown.limiter.EXPECT().Allow(ctx, "bob").Return(true, nil)
	fxUnknown.userRepo.EXPECT().FindByIdentifier(ctx, "bob", "").Return(nil, repository.ErrUserNotFound)
	fxUnknown.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fxUnknown.hasher.EXPECT().Check("wrong", "dummy-hash").Return(false)
	fxUnknown.limiter.EXPECT().RecordFailure(ctx, "bob").Return(nil)
	fxUnknown.metrics.EXPECT().LoginAttempt(service.OutcomeInvalidCredential).Return()

	_, unknownErr := fxUnknown.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "wrong"})

	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, wrongErr.Error(), unknownErr.Error())
}

func TestAuthService_Login_TimingHashComputedOnce(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "bob").Return(true, nil).Times(2)
	fx.userRepo.EXPECT().FindByIdentifier(ctx, "bob", "").Return(nil, repository.ErrUserNotFound).Times(2)
	fx.hasher.EXPECT().Hash(dummyPassword).Return("dummy-hash", nil).Once()
	fx.hasher.EXPECT().Check(mock.Anything, "dummy-hash").Return(false).Times(2)
	fx.limiter.EXPECT().RecordFailure(ctx, "bob").Return(nil).Times(2)
	fx.metrics.EXPECT().LoginAttempt(service.OutcomeInvalidCredential).Return().Times(2)

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "guess"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "alice").Return(false, nil)
	fx.metrics.EXPECT().LoginAttempt(service.OutcomeThrottled).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "P@ss1"})

	assert.ErrorIs(t, err, domainerrors.ErrTooManyAttempts)
}

func TestAuthService_Login_LimiterUnavailable(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow(ctx, "alice").Return(false, errors.New("redis down"))
	fx.metrics.EXPECT().LoginAttempt(service.OutcomeError).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "P@ss1"})

	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	fx := createTestAuthService(t, false)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Password: "P@ss1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	alice := newTestUser("alice")

	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.tokenService.EXPECT().VerifyAccessToken("good").Return(&service.TokenClaims{Subject: alice.ID, Kind: entity.TokenKindAccess}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)

		user, err := fx.service.Authenticate(ctx, "good")

		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
	})

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t, false)

		_, err := fx.service.Authenticate(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.tokenService.EXPECT().VerifyAccessToken("old").Return(nil, service.ErrTokenExpired)

		_, err := fx.service.Authenticate(ctx, "old")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.tokenService.EXPECT().VerifyAccessToken("good").Return(&service.TokenClaims{Subject: alice.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "good")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_Refresh_Success(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	alice := newTestUser("alice")
	alice.RefreshToken = "refresh-1"
	next := newTestPair("2")

	fx.tokenService.EXPECT().VerifyRefreshToken("refresh-1").Return(&service.TokenClaims{Subject: alice.ID, Kind: entity.TokenKindRefresh}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	fx.tokenService.EXPECT().IssueTokenPair(alice.ID).Return(next, nil)
	fx.userRepo.EXPECT().RotateRefreshToken(ctx, alice.ID, "refresh-1", "refresh-2").Return(nil)
	fx.metrics.EXPECT().TokensIssued().Return()
	fx.metrics.EXPECT().RefreshAttempt(service.OutcomeSuccess).Return()

	pair, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})

	require.NoError(t, err)
	assert.Equal(t, next, pair)
}

func TestAuthService_Refresh_SameTokenTwice(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	alice := newTestUser("alice")
	claims := &service.TokenClaims{Subject: alice.ID, Kind: entity.TokenKindRefresh}

	beforeRotation := *alice
	beforeRotation.RefreshToken = "refresh-1"
	afterRotation := *alice
	afterRotation.RefreshToken = "refresh-2"

	fx.tokenService.EXPECT().VerifyRefreshToken("refresh-1").Return(claims, nil).Times(2)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(&beforeRotation, nil).Once()
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(&afterRotation, nil).Once()
	fx.tokenService.EXPECT().IssueTokenPair(alice.ID).Return(newTestPair("2"), nil).Once()
	fx.userRepo.EXPECT().RotateRefreshToken(ctx, alice.ID, "refresh-1", "refresh-2").Return(nil).Once()
	fx.metrics.EXPECT().TokensIssued().Return().Once()
	fx.metrics.EXPECT().RefreshAttempt(service.OutcomeSuccess).Return().Once()
	fx.metrics.EXPECT().RefreshAttempt(service.OutcomeUnauthorized).Return().Once()

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})
	require.NoError(t, err)

	_, err = fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_LostRotationRace(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	alice := newTestUser("alice")
	alice.RefreshToken = "refresh-1"

	fx.tokenService.EXPECT().VerifyRefreshToken("refresh-1").Return(&service.TokenClaims{Subject: alice.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	fx.tokenService.EXPECT().IssueTokenPair(alice.ID).Return(newTestPair("2"), nil)
	fx.userRepo.EXPECT().
		RotateRefreshToken(ctx, alice.ID, "refresh-1", "refresh-2").
		Return(errors.WithStack(repository.ErrRefreshTokenMismatch))
	fx.metrics.EXPECT().RefreshAttempt(service.OutcomeUnauthorized).Return()

	_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "refresh-1"})

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthService_Refresh_Rejections(t *testing.T) {
	ctx := context.Background()
	alice := newTestUser("alice")

	t.Run("missing token", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.metrics.EXPECT().RefreshAttempt(service.OutcomeUnauthorized).Return()

		_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.tokenService.EXPECT().VerifyRefreshToken("forged").Return(nil, service.ErrTokenMalformed)
		fx.metrics.EXPECT().RefreshAttempt(service.OutcomeUnauthorized).Return()

		_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "forged"})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("unknown subject", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		fx.tokenService.EXPECT().VerifyRefreshToken("orphan").Return(&service.TokenClaims{Subject: alice.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(nil, repository.ErrUserNotFound)
		fx.metrics.EXPECT().RefreshAttempt(service.OutcomeUnauthorized).Return()

		_, err := fx.service.Refresh(ctx, &usecase.RefreshInput{RefreshToken: "orphan"})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService(t, false)
	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().UpdateRefreshToken(ctx, id, "").Return(repository.ErrUserNotFound)

	assert.NoError(t, fx.service.Logout(ctx, id))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps session by default", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		alice := newTestUser("alice")
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("old", alice.PasswordHash).Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("new").Return(nil)
		fx.hasher.EXPECT().Hash("new").Return("hashed:new", nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, alice.ID, "hashed:new", false).Return(nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: "new"})

		require.NoError(t, err)
	})

	t.Run("revokes session when configured", func(t *testing.T) {
		fx := createTestAuthService(t, true)
		alice := newTestUser("alice")
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("old", alice.PasswordHash).Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("new").Return(nil)
		fx.hasher.EXPECT().Hash("new").Return("hashed:new", nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, alice.ID, "hashed:new", true).Return(nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: "new"})

		require.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		alice := newTestUser("alice")
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("nope", alice.PasswordHash).Return(false)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "nope", NewPassword: "new"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestAuthService(t, false)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: uuid.New(), OldPassword: "old"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})

	t.Run("new password too long", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		alice := newTestUser("alice")
		password := strings.Repeat("密", 25)
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("old", alice.PasswordHash).Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength(password).Return(errors.WithStack(service.ErrPasswordTooLong))

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: password})

		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "password must be at most 72 bytes", appErr.Details())
	})

	t.Run("failed write keeps session and reports internal error", func(t *testing.T) {
		fx := createTestAuthService(t, true)
		alice := newTestUser("alice")
		writeErr := errors.New("connection reset")
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("old", alice.PasswordHash).Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("new").Return(nil)
		fx.hasher.EXPECT().Hash("new").Return("hashed:new", nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, alice.ID, "hashed:new", true).Return(writeErr).Once()

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: "new"})

		assert.ErrorIs(t, err, domainerrors.ErrInternal)
		assert.ErrorIs(t, err, writeErr)
		fx.userRepo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("user removed before write", func(t *testing.T) {
		fx := createTestAuthService(t, false)
		alice := newTestUser("alice")
		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.hasher.EXPECT().Check("old", alice.PasswordHash).Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("new").Return(nil)
		fx.hasher.EXPECT().Hash("new").Return("hashed:new", nil)
		fx.userRepo.EXPECT().UpdatePasswordHash(ctx, alice.ID, "hashed:new", false).Return(errors.WithStack(repository.ErrUserNotFound))

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: "new"})

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
