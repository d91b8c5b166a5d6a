package config

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput перехватывает вывод log.Fatal
func captureOutput(f func()) (string, bool) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	oldFlags := log.Flags()
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(oldFlags)
	}()

	panicked := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicked = true
			}
		}()
		f()
	}()

	return buf.String(), panicked
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), "config_*.yaml")
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestMustLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
env: prod
redis_connection:
  addressredis: "localhost:6379"
  password: "redis_pass"
  user: "redis_user"
  db: 1
  max_retries: 5
  dial_timeout: 2s
  timeoutredis: 4s
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 90s
plan_api:
  base_url: "http://api.local/api/subscription"
  timeout: 7s
jwttoken:
  jwt_secret_key: "test_secret_key"
  admin_role: "editor"
dashboard:
  message_ttl: 5s
  idle_ttl: 1h
  sweep_interval: 1m
rate_limit:
  rps: 2
  burst: 4
`)
	t.Setenv("CONFIG_PATH", path)

	output, panicked := captureOutput(func() {
		cfg := MustLoad()

		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "localhost:6379", cfg.AddressRedis)
		assert.Equal(t, "redis_pass", cfg.Password)
		assert.Equal(t, "redis_user", cfg.User)
		assert.Equal(t, 1, cfg.DB)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, 2*time.Second, cfg.DialTimeout)
		assert.Equal(t, 4*time.Second, cfg.TimeoutRedis)
		assert.Equal(t, ":8080", cfg.AddressHTTP)
		assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
		assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
		assert.Equal(t, "http://api.local/api/subscription", cfg.BaseURL)
		assert.Equal(t, 7*time.Second, cfg.TimeoutPlanAPI)
		assert.Equal(t, "test_secret_key", cfg.JWTSecretKey)
		assert.Equal(t, "editor", cfg.AdminRole)
		assert.Equal(t, 5*time.Second, cfg.MessageTTL)
		assert.Equal(t, time.Hour, cfg.IdleTTL)
		assert.Equal(t, time.Minute, cfg.SweepInterval)
		assert.Equal(t, 2.0, cfg.RPS)
		assert.Equal(t, 4, cfg.Burst)
	})

	assert.Empty(t, output)
	assert.False(t, panicked)
}

func TestLoad_DefaultValues(t *testing.T) {
	path := writeConfig(t, `
env: test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "", cfg.AddressRedis)
	assert.Equal(t, ":3000", cfg.AddressHTTP)
	assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, "http://localhost:5000/api/subscription", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.TimeoutPlanAPI)
	assert.Equal(t, "", cfg.JWTSecretKey)
	assert.Equal(t, "admin", cfg.AdminRole)
	assert.Equal(t, 3*time.Second, cfg.MessageTTL)
	assert.Equal(t, 30*time.Minute, cfg.IdleTTL)
	assert.Equal(t, 5*time.Minute, cfg.SweepInterval)
	assert.Equal(t, 5.0, cfg.RPS)
	assert.Equal(t, 10, cfg.Burst)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load("/definitely/not/here.yaml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestConfig_StringHidesSecrets(t *testing.T) {
	cfg := &Config{
		RedisConnection: RedisConnection{Password: "redis_pass"},
		JWTToken:        JWTToken{JWTSecretKey: "top_secret"},
	}

	out := cfg.String()
	assert.NotContains(t, out, "redis_pass")
	assert.NotContains(t, out, "top_secret")
}
