package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authsvc/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	assert.Equal(t, generated, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetRequestID_FromRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-ctx"))
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "req-ctx", GetRequestID(c))
	assert.Equal(t, "req-ctx", c.Get(string(KeyRequestID)))
}

func TestLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAccount(t *testing.T) {
	_, ok := GetAccount(context.Background())
	assert.False(t, ok)

	_, ok = GetAccount(WithAccount(context.Background(), nil))
	assert.False(t, ok)

	account := &entity.Account{ID: uuid.New()}
	got, ok := GetAccount(WithAccount(context.Background(), account))
	assert.True(t, ok)
	assert.Same(t, account, got)
}
