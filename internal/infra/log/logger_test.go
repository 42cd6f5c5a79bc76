package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"authcore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))

	cfg.Env.Log.Level = "nope"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}

func TestNewLogger_RedactsSensitiveAttrs(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.ServiceName = "authcore"

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("credential event",
		slog.String("password", "hunter22"),
		slog.String("password_hash", "$2a$08$digest"),
		slog.String("Authorization", "Bearer abc.def.ghi"),
		slog.String("user_id", "42"),
	)

	out := buf.String()
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, "$2a$08$digest")
	assert.NotContains(t, out, "abc.def.ghi")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, redacted, entry["password"])
	assert.Equal(t, "42", entry["user_id"])
	assert.Equal(t, "authcore", entry["service"])
}

func TestNewLogger_PrettyUsesText(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Level = "info"
	cfg.Env.Log.Pretty = true

	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hello", slog.String("token", "abc"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "token="+redacted)
}
