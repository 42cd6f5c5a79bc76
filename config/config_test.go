package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: authcore
  log:
    level: info
http:
  port: 8080
secretKey:
  access: ""
auth:
  bcryptCost: 10
  tokenTTL: 2h
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "authcore_test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	clearEnv(t, "ENV", "HTTP", "AUTH", "SECRETKEY")

	t.Setenv("SECRETKEY_ACCESS", "from-env-secret")
	t.Setenv("AUTH_TOKENTTL", "30m")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("authcore_test")
	require.NoError(t, err)

	assert.Equal(t, "authcore", cfg.Env.ServiceName)
	assert.Equal(t, "from-env-secret", cfg.SecretKey.Access)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
}

// clearEnv removes variables whose names collide with top-level config sections.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does_not_exist")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfig_AuthDefaults(t *testing.T) {
	var nilCfg *Config
	assert.Equal(t, 8, nilCfg.BcryptCost())
	assert.Equal(t, 2*time.Hour, nilCfg.TokenTTL())

	cfg := &Config{}
	assert.Equal(t, 8, cfg.BcryptCost())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL())

	cfg.Auth = &AuthConfig{BcryptCost: 4, TokenTTL: time.Minute}
	assert.Equal(t, 4, cfg.BcryptCost())
	assert.Equal(t, time.Minute, cfg.TokenTTL())
}
