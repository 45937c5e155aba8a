package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, []string{SourceStatic}, cfg.CatalogSources)
	assert.Equal(t, 6, cfg.PageSize)
	assert.Equal(t, 300*time.Millisecond, cfg.RenderDelay)
	assert.Equal(t, "0 9 * * *", cfg.DigestCron)
	assert.Nil(t, cfg.TelegramThreadID)
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CATALOG_SOURCES", " Static , HTML")
	t.Setenv("CATALOG_HTML_URL", "https://alpha.example/projects")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "chat")
	t.Setenv("TELEGRAM_CHAT_THREAD_ID", "12")
	t.Setenv("DIGEST_CALENDAR", "persian")
	t.Setenv("LOAD_MORE_DELAY", "1s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{SourceStatic, SourceHTML}, cfg.CatalogSources)
	assert.True(t, cfg.UsesSource(SourceHTML))
	assert.False(t, cfg.UsesSource(SourcePostgres))
	require.NotNil(t, cfg.TelegramThreadID)
	assert.Equal(t, 12, *cfg.TelegramThreadID)
	assert.True(t, cfg.TelegramEnabled())
	assert.Equal(t, time.Second, cfg.LoadMoreDelay)
}

func TestLoadRejectsBadThreadID(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_THREAD_ID", "general")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		CatalogSources: []string{SourceStatic},
		DBHost:         "localhost",
		DBUser:         "postgres",
		DBName:         "alpha",
		DigestCalendar: "gregorian",
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no sources", mutate: func(c *Config) { c.CatalogSources = nil }},
		{name: "unknown source", mutate: func(c *Config) { c.CatalogSources = []string{"mongo"} }},
		{name: "json without url", mutate: func(c *Config) { c.CatalogSources = []string{SourceJSON} }},
		{name: "html without url", mutate: func(c *Config) { c.CatalogSources = []string{SourceHTML} }},
		{name: "postgres without host", mutate: func(c *Config) { c.CatalogSources = []string{SourcePostgres}; c.DBHost = "" }},
		{name: "token without chat", mutate: func(c *Config) { c.TelegramToken = "tok" }},
		{name: "bad calendar", mutate: func(c *Config) { c.DigestCalendar = "lunar" }},
		{name: "negative delay", mutate: func(c *Config) { c.RenderDelay = -time.Second }},
	}

	require.NoError(t, base.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "alpha", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/alpha?sslmode=disable", cfg.PostgresDSN())
}
