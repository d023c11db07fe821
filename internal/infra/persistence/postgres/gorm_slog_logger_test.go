package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"vidtube/config"
	deliverycontext "vidtube/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_LevelFromDebugFlag(t *testing.T) {
	cfg := &config.Config{}
	l := newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, l.level)

	cfg.Env.Debug = true
	l = newGormSlogLogger(nil, cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, l.level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})
	ctx := context.Background()

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is not an error worth logging")

	l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "component=gorm")

	buf.Reset()
	l.Trace(ctx, time.Now(), sqlFn("INSERT"), assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{}).LogMode(logger.Info)

	reqLogger := newBufferedLogger(&scoped).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn("INSERT"), assert.AnError)
	l.Error(context.Background(), "boom")
	assert.Empty(t, buf.String())
}
