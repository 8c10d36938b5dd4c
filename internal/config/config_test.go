package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/content")
	t.Setenv("MONGO_DB", "")
	t.Setenv("TZ", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "content", cfg.MongoDB)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, 5, cfg.RateLimitContact)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL())
	assert.Equal(t, time.UTC.String(), cfg.Timezone.String())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FRONTEND_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CACHE_TTL_SECONDS", "30")
	t.Setenv("RATE_LIMIT_CONTACT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.FrontendOrigins)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL())
	assert.Equal(t, 5, cfg.RateLimitContact)
}

func TestMongoDBFromURI(t *testing.T) {
	assert.Equal(t, "site", mongoDBFromURI("mongodb://host:27017/site"))
	assert.Equal(t, "site", mongoDBFromURI("mongodb://host:27017/site/extra"))
	assert.Equal(t, "", mongoDBFromURI("mongodb://host:27017"))
}

func TestLoadInvalidTimezone(t *testing.T) {
	t.Setenv("TZ", "Not/AZone")
	_, err := Load()
	assert.Error(t, err)
}
