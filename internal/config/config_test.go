package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("DB_USER", "camper")
	t.Setenv("DB_PASS", "")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "campspot")
	t.Setenv("CORS_ORIGIN", "http://front.example")
	t.Setenv("IMAGE_DIR", "/srv/img")

	cfg := Load()
	require.Equal(t, "test", cfg.Env)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "camper", cfg.DBUser)
	assert.Empty(t, cfg.DBPass)
	assert.Equal(t, "campspot", cfg.DBName)
	assert.Equal(t, "http://front.example", cfg.CORSOrigin)
	assert.Equal(t, "/srv/img", cfg.ImageDir)
}

func TestLoadDefaultsOriginAndImageDir(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("DB_USER", "camper")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "campspot")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("IMAGE_DIR", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8080", cfg.CORSOrigin)
	assert.Equal(t, "assets/img", cfg.ImageDir)
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_METHODS", "")
	t.Setenv("CACHE_TTL", "")

	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)
}

func TestParseMethodsNormalizes(t *testing.T) {
	m := parseMethods(" get , Head ,")
	assert.True(t, m["GET"])
	assert.True(t, m["HEAD"])
	assert.Len(t, m, 2)
}

func TestLoadRateLimitConfigClampsBadValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-2")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	// TTL is raised to cover several refill cycles.
	assert.Equal(t, 5*time.Second, cfg.TTL)
}
