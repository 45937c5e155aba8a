package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"alpha-listings/internal/config"
	"alpha-listings/internal/db"
	"alpha-listings/internal/httpapi"
	"alpha-listings/internal/notify"
	"alpha-listings/internal/providers/htmlcards"
	"alpha-listings/internal/providers/jsonapi"
	"alpha-listings/internal/providers/static"
	"alpha-listings/internal/repositories/pg"
	"alpha-listings/internal/scheduler"
	"alpha-listings/internal/services/catalog"
	"alpha-listings/internal/services/digest"
	"alpha-listings/internal/telegram"
)

type Builder struct {
	cfg      *config.Config
	basePath string

	pool      *pgxpool.Pool
	poolOwned bool
	openPool  func(ctx context.Context, dsn string) (*pgxpool.Pool, error)
	sources   []catalog.Source
	notifier  notify.Notifier
	client    *http.Client

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{cfg: cfg, openPool: db.NewPool}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithBasePath(basePath string) BuilderOption {
	return func(b *Builder) {
		b.basePath = basePath
	}
}

func WithDBPool(pool *pgxpool.Pool) BuilderOption {
	return func(b *Builder) {
		b.pool = pool
	}
}

func WithSources(sources []catalog.Source) BuilderOption {
	return func(b *Builder) {
		b.sources = sources
	}
}

func WithNotifier(notifier notify.Notifier) BuilderOption {
	return func(b *Builder) {
		b.notifier = notifier
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}

	app := &App{Config: b.cfg}

	if b.client == nil {
		b.client = &http.Client{Timeout: 15 * time.Second}
	}

	if b.sources == nil {
		sources, err := b.buildSources(ctx)
		if err != nil {
			return nil, err
		}
		b.sources = sources
	}

	cat, err := catalog.NewService(b.sources).Load(ctx)
	if b.ownsPool() {
		b.pool.Close()
	}
	if err != nil {
		return nil, err
	}
	app.Catalog = cat

	if b.notifier == nil {
		if b.cfg.TelegramEnabled() {
			sender := telegram.NewSender(b.cfg.TelegramToken, b.cfg.TelegramChat, b.cfg.TelegramThreadID)
			app.closers = append(app.closers, sender.Close)
			b.notifier = sender
		} else {
			log.Printf("telegram not configured; notifications go to the log")
			b.notifier = notify.Log{}
		}
	}
	app.Notifier = b.notifier

	app.Digest = digest.NewService(app.Catalog, app.Notifier, b.cfg.DigestSize, digest.Calendar(b.cfg.DigestCalendar))

	if b.scheduler == nil {
		b.scheduler = scheduler.New(b.cfg.DigestCron, app.Digest)
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		handler := httpapi.NewHandler(app.Catalog, app.Notifier, app.Digest, b.cfg.PageSize)
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}

func (b *Builder) buildSources(ctx context.Context) ([]catalog.Source, error) {
	sources := make([]catalog.Source, 0, len(b.cfg.CatalogSources))
	for _, name := range b.cfg.CatalogSources {
		switch name {
		case config.SourceStatic:
			sources = append(sources, static.NewSource())
		case config.SourceHTML:
			sources = append(sources, htmlcards.NewSource(b.client, b.cfg.CatalogHTMLURL, b.cfg.CatalogHTMLMaxPages))
		case config.SourceJSON:
			sources = append(sources, jsonapi.NewSource(b.client, b.cfg.CatalogJSONURL, b.cfg.CatalogJSONMaxPages))
		case config.SourcePostgres:
			pool, err := b.postgresPool(ctx)
			if err != nil {
				return nil, err
			}
			sources = append(sources, pg.NewProjectRepository(pool))
		default:
			return nil, errors.New("unknown catalog source: " + name)
		}
	}
	return sources, nil
}

func (b *Builder) postgresPool(ctx context.Context) (*pgxpool.Pool, error) {
	if b.pool == nil {
		pool, err := b.openPool(ctx, b.cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		b.pool = pool
		b.poolOwned = true
	}

	if b.cfg.DBEnsureSchema {
		if err := b.ensureSchema(ctx); err != nil {
			if b.ownsPool() {
				b.pool.Close()
				b.pool, b.poolOwned = nil, false
			}
			return nil, err
		}
	}
	return b.pool, nil
}

func (b *Builder) ensureSchema(ctx context.Context) error {
	basePath := b.basePath
	if basePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		basePath = wd
	}
	path, err := filepath.Abs(basePath)
	if err != nil {
		return err
	}
	return db.EnsureSchema(ctx, b.pool, path)
}

func (b *Builder) ownsPool() bool {
	return b.pool != nil && b.poolOwned
}
