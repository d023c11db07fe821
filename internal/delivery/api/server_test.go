package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vidtube/config"
	apimiddleware "vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router"
	"vidtube/internal/delivery/api/router/handler"
	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/infra/metrics"
	mockUC "vidtube/internal/mocks/usecase"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixtures struct {
	echo    *echo.Echo
	auth    *mockUC.MockAuthUsecase
	profile *mockUC.MockProfileUsecase
	tweets  *mockUC.MockTweetUsecase
	metrics *metrics.Registry
}

func newTestConfig(env string) *config.Config {
	cfg := &config.Config{
		Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	cfg.Env.Env = env
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func createTestServer(t *testing.T, env string) serverFixtures {
	cfg := newTestConfig(env)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authUC := mockUC.NewMockAuthUsecase(t)
	profileUC := mockUC.NewMockProfileUsecase(t)
	tweetUC := mockUC.NewMockTweetUsecase(t)
	registry := metrics.NewRegistry(cfg)

	e := newEcho(cfg, logger, registry, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUC, cfg),
		UserHandler:    handler.NewUserHandler(profileUC),
		TweetHandler:   handler.NewTweetHandler(tweetUC),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(authUC),
		Metrics:        registry,
		Config:         cfg,
	})

	return serverFixtures{echo: e, auth: authUC, profile: profileUC, tweets: tweetUC, metrics: registry}
}

func (f serverFixtures) do(method, target, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, m := range mutate {
		m(req)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func testPair() *entity.TokenPair {
	return &entity.TokenPair{
		AccessToken:      "access-1",
		RefreshToken:     "refresh-1",
		AccessExpiresAt:  time.Now().Add(time.Hour),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t, "development")

	for _, path := range []string{"/health", "/api/v1/healthcheck"} {
		rec := fx.do(http.MethodGet, path, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.True(t, decode(t, rec).Success)
	}
}

func TestServer_Register(t *testing.T) {
	fx := createTestServer(t, "development")
	id := uuid.New()

	fx.auth.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@x.com",
			FullName: "Alice",
			Password: "P@ss1",
		}).
		Return(&entity.PublicUser{ID: id, Username: "alice", Email: "alice@x.com"}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/register",
		`{"username":"alice","email":"alice@x.com","fullName":"Alice","password":"P@ss1"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), id.String())
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestServer_Register_ValidationDetails(t *testing.T) {
	fx := createTestServer(t, "development")

	rec := fx.do(http.MethodPost, "/api/v1/users/register", `{"username":"alice","email":"not-an-email"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email must be a valid email")
	assert.Contains(t, env.Error.Details, "fullName is required")
}

func TestServer_Register_PasswordTooLong(t *testing.T) {
	fx := createTestServer(t, "development")
	password := strings.Repeat("a", 100)

	rec := fx.do(http.MethodPost, "/api/v1/users/register",
		`{"username":"alice","email":"alice@x.com","fullName":"Alice","password":"`+password+`"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Equal(t, "password must be at most 72 bytes", env.Error.Details)
	fx.auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestServer_Login_SetsCookies(t *testing.T) {
	fx := createTestServer(t, "production")
	pair := testPair()

	fx.auth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "P@ss1"}).
		Return(&usecase.LoginOutput{Tokens: pair, User: &entity.PublicUser{Username: "alice"}}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"P@ss1"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	access := findCookie(rec, apimiddleware.AccessTokenCookie)
	require.NotNil(t, access)
	assert.Equal(t, pair.AccessToken, access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)

	refresh := findCookie(rec, handler.RefreshTokenCookie)
	require.NotNil(t, refresh)
	assert.Equal(t, pair.RefreshToken, refresh.Value)

	data := string(decode(t, rec).Data)
	assert.Contains(t, data, `"accessToken":"access-1"`)
	assert.Contains(t, data, `"username":"alice"`)
}

func TestServer_Login_InsecureCookiesOutsideProduction(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.auth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{Tokens: testPair(), User: &entity.PublicUser{}}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/login", `{"email":"alice@x.com","password":"P@ss1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, findCookie(rec, apimiddleware.AccessTokenCookie).Secure)
}

func TestServer_Login_InvalidCredentials(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.auth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := fx.do(http.MethodPost, "/api/v1/users/login", `{"username":"alice","password":"nope"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, findCookie(rec, apimiddleware.AccessTokenCookie))
}

func TestServer_RefreshToken_PrefersCookie(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.auth.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "from-cookie"}).
		Return(testPair(), nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/refresh-token", `{"refreshToken":"from-body"}`, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: handler.RefreshTokenCookie, Value: "from-cookie"})
	})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotNil(t, findCookie(rec, handler.RefreshTokenCookie))
}

func TestServer_RefreshToken_FromBody(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.auth.EXPECT().
		Refresh(mock.Anything, &usecase.RefreshInput{RefreshToken: "from-body"}).
		Return(nil, domainerrors.ErrUnauthorized)

	rec := fx.do(http.MethodPatch, "/api/v1/users/refresh-token", `{"refreshToken":"from-body"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ProtectedRoutes_RequireToken(t *testing.T) {
	fx := createTestServer(t, "development")

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/users/current-user"},
		{http.MethodPost, "/api/v1/users/logout"},
		{http.MethodGet, "/api/v1/users/watch-history"},
		{http.MethodGet, "/api/v1/tweet/my-tweet"},
		{http.MethodPost, "/api/v1/videos/" + uuid.NewString() + "/watch"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := fx.do(rt.method, rt.path, "")

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)
		})
	}
}

func TestServer_CurrentUser_WithBearerAndCookie(t *testing.T) {
	fx := createTestServer(t, "development")
	alice := &entity.PublicUser{ID: uuid.New(), Username: "alice"}

	fx.auth.EXPECT().Authenticate(mock.Anything, "cookie-token").Return(alice, nil).Once()
	fx.auth.EXPECT().Authenticate(mock.Anything, "header-token").Return(alice, nil).Once()
	fx.profile.EXPECT().GetCurrentUser(mock.Anything, alice.ID).Return(alice, nil).Times(2)

	rec := fx.do(http.MethodGet, "/api/v1/users/current-user", "", func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: apimiddleware.AccessTokenCookie, Value: "cookie-token"})
		r.Header.Set(echo.HeaderAuthorization, "Bearer ignored")
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/users/current-user", "", bearer("header-token"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Logout_ClearsCookies(t *testing.T) {
	fx := createTestServer(t, "development")
	alice := &entity.PublicUser{ID: uuid.New()}

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(alice, nil)
	fx.auth.EXPECT().Logout(mock.Anything, alice.ID).Return(nil)

	rec := fx.do(http.MethodPost, "/api/v1/users/logout", "", bearer("token"))

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := findCookie(rec, apimiddleware.AccessTokenCookie)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestServer_ChangePassword(t *testing.T) {
	fx := createTestServer(t, "development")
	alice := &entity.PublicUser{ID: uuid.New()}

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(alice, nil)
	fx.auth.EXPECT().
		ChangePassword(mock.Anything, &usecase.ChangePasswordInput{UserID: alice.ID, OldPassword: "old", NewPassword: "new"}).
		Return(domainerrors.ErrInvalidCredentials)

	rec := fx.do(http.MethodPatch, "/api/v1/users/change-password", `{"oldPassword":"old","newPassword":"new"}`, bearer("token"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_ChangePassword_NewPasswordTooLong(t *testing.T) {
	fx := createTestServer(t, "development")
	alice := &entity.PublicUser{ID: uuid.New()}
	password := strings.Repeat("密", 25)

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(alice, nil)

	rec := fx.do(http.MethodPatch, "/api/v1/users/change-password",
		`{"oldPassword":"old","newPassword":"`+password+`"}`, bearer("token"))

	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Equal(t, "newPassword must be at most 72 bytes", decode(t, rec).Error.Details)
	fx.auth.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
}

func TestServer_ChannelAndSubscription(t *testing.T) {
	fx := createTestServer(t, "development")
	viewer := &entity.PublicUser{ID: uuid.New()}
	channelID := uuid.New()

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(viewer, nil)
	fx.profile.EXPECT().
		GetChannelProfile(mock.Anything, "alice", viewer.ID).
		Return(&entity.ChannelProfile{ID: channelID, Username: "alice", SubscribersCount: 3}, nil)
	fx.profile.EXPECT().
		ToggleSubscription(mock.Anything, viewer.ID, "alice").
		Return(&usecase.SubscriptionOutput{ChannelID: channelID, Subscribed: true}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/users/channel/alice", "", bearer("token"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"subscribersCount":3`)

	rec = fx.do(http.MethodPost, "/api/v1/users/channel/alice/subscription", "", bearer("token"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Subscribed successfully", decode(t, rec).Message)
}

func TestServer_RecordWatch_BadVideoID(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(&entity.PublicUser{ID: uuid.New()}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/videos/not-a-uuid/watch", "", bearer("token"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid videoId", decode(t, rec).Error.Details)
}

func TestServer_Tweets(t *testing.T) {
	fx := createTestServer(t, "development")
	owner := &entity.PublicUser{ID: uuid.New()}
	tweetID := uuid.New()

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(owner, nil)
	fx.tweets.EXPECT().
		CreateTweet(mock.Anything, owner.ID, "hello").
		Return(&entity.Tweet{ID: tweetID, OwnerID: owner.ID, Content: "hello"}, nil)
	fx.tweets.EXPECT().
		DeleteTweet(mock.Anything, owner.ID, tweetID).
		Return(domainerrors.ErrForbidden).Times(2)
	fx.tweets.EXPECT().
		ListMyTweets(mock.Anything, owner.ID).
		Return(nil, domainerrors.ErrTweetNotFound)

	rec := fx.do(http.MethodPost, "/api/v1/tweet/create", `{"content":"hello"}`, bearer("token"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodPatch, "/api/v1/tweet/delete/"+tweetID.String(), "", bearer("token"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodDelete, "/api/v1/tweet/delete/"+tweetID.String(), "", bearer("token"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = fx.do(http.MethodGet, "/api/v1/tweet/my-tweet", "", bearer("token"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_InternalErrorsHideDetails(t *testing.T) {
	fx := createTestServer(t, "development")
	owner := &entity.PublicUser{ID: uuid.New()}

	fx.auth.EXPECT().Authenticate(mock.Anything, "token").Return(owner, nil)
	fx.tweets.EXPECT().
		ListMyTweets(mock.Anything, owner.ID).
		Return(nil, domainerrors.Internal(context.DeadlineExceeded, "failed to list tweets"))

	rec := fx.do(http.MethodGet, "/api/v1/tweet/my-tweet", "", bearer("token"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "deadline")
}

func TestServer_MetricsRoute(t *testing.T) {
	fx := createTestServer(t, "development")

	fx.do(http.MethodGet, "/health", "")
	rec := fx.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vidtube_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServer_RequestIDEchoed(t *testing.T) {
	fx := createTestServer(t, "development")

	rec := fx.do(http.MethodGet, "/health", "", func(r *http.Request) {
		r.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	})

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", decode(t, rec).Meta.RequestID)
}
