package app

import (
	"context"
	"log"
	"net/http"

	"alpha-listings/internal/config"
	"alpha-listings/internal/notify"
	"alpha-listings/internal/scheduler"
	"alpha-listings/internal/services/catalog"
	"alpha-listings/internal/services/digest"
)

type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Notifier  notify.Notifier
	Digest    *digest.Service
	Scheduler *scheduler.Scheduler
	Server    *http.Server

	closers []func()
}

func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		log.Printf("HTTP server listening on %s", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.Scheduler.Stop()
	err := a.Server.Shutdown(ctx)
	for _, closeFn := range a.closers {
		closeFn()
	}
	return err
}
