package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"alpha-listings/internal/app"
	"alpha-listings/internal/config"
)

const (
	buildTimeout    = time.Minute
	shutdownTimeout = 30 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log.Printf("catalog sources: %s; digest cron: %q", strings.Join(cfg.CatalogSources, ","), cfg.DigestCron)

	// The catalog is loaded during Build; a stuck source must not hold
	// start-up forever.
	buildCtx, cancelBuild := context.WithTimeout(context.Background(), buildTimeout)
	application, err := app.NewBuilder(&cfg).Build(buildCtx)
	cancelBuild()
	if err != nil {
		return fmt.Errorf("app build error: %w", err)
	}

	if err := application.Start(); err != nil {
		return fmt.Errorf("app start error: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	log.Printf("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	return nil
}
