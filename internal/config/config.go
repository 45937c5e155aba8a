package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceStatic   = "static"
	SourceHTML     = "html"
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"3000"`

	CatalogSources      []string `env:"CATALOG_SOURCES" envDefault:"static" envSeparator:","`
	CatalogHTMLURL      string   `env:"CATALOG_HTML_URL"`
	CatalogHTMLMaxPages int      `env:"CATALOG_HTML_MAX_PAGES" envDefault:"5"`
	CatalogJSONURL      string   `env:"CATALOG_JSON_URL"`
	CatalogJSONMaxPages int      `env:"CATALOG_JSON_MAX_PAGES" envDefault:"5"`

	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USERNAME" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName         string `env:"DB_DATABASE" envDefault:"alpha"`
	DBSSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBEnsureSchema bool   `env:"DB_ENSURE_SCHEMA" envDefault:"false"`

	TelegramToken    string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChat     string `env:"TELEGRAM_CHAT_ID"`
	TelegramThreadID *int   `env:"TELEGRAM_CHAT_THREAD_ID"`

	DigestCron     string `env:"DIGEST_CRON" envDefault:"0 9 * * *"`
	DigestSize     int    `env:"DIGEST_SIZE" envDefault:"6"`
	DigestCalendar string `env:"DIGEST_CALENDAR" envDefault:"gregorian"`

	PageSize      int           `env:"PAGE_SIZE" envDefault:"6"`
	RenderDelay   time.Duration `env:"RENDER_DELAY" envDefault:"300ms"`
	LoadMoreDelay time.Duration `env:"LOAD_MORE_DELAY" envDefault:"300ms"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	for i, s := range cfg.CatalogSources {
		cfg.CatalogSources[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.CatalogSources) == 0 {
		return errors.New("CATALOG_SOURCES must name at least one source")
	}
	for _, s := range c.CatalogSources {
		switch s {
		case SourceStatic, SourceHTML, SourceJSON, SourcePostgres:
		default:
			return fmt.Errorf("unknown catalog source %q", s)
		}
	}

	if c.UsesSource(SourceHTML) && c.CatalogHTMLURL == "" {
		return errors.New("missing CATALOG_HTML_URL for html source")
	}
	if c.UsesSource(SourceJSON) && c.CatalogJSONURL == "" {
		return errors.New("missing CATALOG_JSON_URL for json source")
	}
	if c.UsesSource(SourcePostgres) && (c.DBHost == "" || c.DBUser == "" || c.DBName == "") {
		return errors.New("missing database configuration")
	}
	if (c.TelegramToken == "") != (c.TelegramChat == "") {
		return errors.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	if c.DigestCalendar != "gregorian" && c.DigestCalendar != "persian" {
		return fmt.Errorf("invalid DIGEST_CALENDAR %q", c.DigestCalendar)
	}
	if c.RenderDelay < 0 || c.LoadMoreDelay < 0 {
		return errors.New("delays must not be negative")
	}
	return nil
}

func (c Config) UsesSource(name string) bool {
	return slices.Contains(c.CatalogSources, name)
}

func (c Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChat != ""
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}
