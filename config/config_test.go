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
  env: test
  serviceName: bookshop
http:
  port: 8080
redis:
  addr: localhost:6379
  keyPrefix: file-prefix
secretKey:
  access: access-from-file
  refresh: refresh-from-file
auth:
  accessTokenTTL: 5m
rateLimit:
  enabled: true
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsFileAndEnvOverrides(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("SECRETKEY_ACCESS", "access-from-env")
	t.Setenv("REDIS_KEYPREFIX", "env-prefix")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "bookshop", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "access-from-env", cfg.SecretKey.Access)
	assert.Equal(t, "refresh-from-file", cfg.SecretKey.Refresh)
	assert.Equal(t, "env-prefix", cfg.Redis.KeyPrefix)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{RateLimit: &RateLimitConfig{Enabled: true}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 15*time.Minute, cfg.Auth.ResetCodeTTL)
	assert.Equal(t, StorageProviderLocal, cfg.Storage.Provider)
	assert.Equal(t, "/uploads", cfg.Storage.Local.URLPrefix)
	assert.Equal(t, 100, cfg.RateLimit.Limit)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing access secret", mutate: func(c *Config) { c.SecretKey.Access = "" }, wantErr: "required"},
		{name: "shared secret", mutate: func(c *Config) { c.SecretKey.Refresh = c.SecretKey.Access }, wantErr: "must differ"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Provider = "ftp" }, wantErr: "unknown storage provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SecretKey.Access = "a"
			cfg.SecretKey.Refresh = "r"
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
