package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authcore/config"
	deliverycontext "authcore/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	var seenLogger *slog.Logger
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		seenLogger = deliverycontext.GetLogger(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.NotEmpty(t, seenID)
	assert.NotNil(t, seenLogger)
	assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, seenID, deliverycontext.GetRequestID(c))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedClientID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "newline injection", id: "abc\nlevel=ERROR"},
		{name: "spaces", id: "two words"},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{tt.id}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.id, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		wantLog bool
	}{
		{name: "debug logs requests", debug: true, wantLog: true},
		{name: "non-debug is silent", debug: false, wantLog: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

			handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			if tt.wantLog {
				assert.Contains(t, buf.String(), `"uri":"/health"`)
				assert.Contains(t, buf.String(), `"status":200`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
