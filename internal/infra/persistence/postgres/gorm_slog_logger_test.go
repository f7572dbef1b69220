package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"authsvc/config"
	deliverycontext "authsvc/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "accounts"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlAndRows, gorm.ErrRecordNotFound)
		assert.Zero(t, buf.Len())
	})

	t.Run("query errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "level=ERROR")
	})

	t.Run("unique violations are warnings", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlAndRows, &pgconn.PgError{Code: pgCodeUniqueViolation})
		assert.Contains(t, buf.String(), "GORM constraint violation")
		assert.Contains(t, buf.String(), "level=WARN")
	})

	t.Run("slow queries are warnings", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
		assert.Zero(t, buf.Len())

		l, buf = newBufferedGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlAndRows, nil)
		assert.Contains(t, buf.String(), "GORM query")
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, base := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("boom"))

	assert.Zero(t, base.Len())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}
