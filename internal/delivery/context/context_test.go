package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestIdentity_RoundTrip(t *testing.T) {
	c := newEchoContext()

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	user := &entity.PublicUser{ID: uuid.New(), Username: "alice"}
	SetIdentity(c, user)

	got, ok := GetIdentity(c)
	require.True(t, ok)
	assert.Same(t, user, got)

	SetIdentity(c, nil)
	_, ok = GetIdentity(c)
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, RequestID(c))

	c.Response().Header().Set(HeaderXRequestID, "from-header")
	assert.Equal(t, "from-header", RequestID(c))

	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-1")))
	assert.Equal(t, "req-1", RequestID(c))
	assert.Equal(t, "req-1", RequestIDFrom(c.Request().Context()))
}

func TestLoggerOr(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, LoggerOr(context.Background(), fallback))

	ctx := WithLogger(context.Background(), scoped)
	got, ok := LoggerFrom(ctx)
	require.True(t, ok)
	assert.Same(t, scoped, got)
	assert.Same(t, scoped, LoggerOr(ctx, fallback))
}
