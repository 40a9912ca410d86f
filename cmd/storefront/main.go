// Package main runs the storefront command console.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/storefront/internal/app"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/pkg/bootstrap"
	"github.com/abgdnv/storefront/pkg/config/configloader"
	"github.com/abgdnv/storefront/pkg/telemetry"
	"golang.org/x/sync/errgroup"
)

const serviceName = "storefront"

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration and the catalog, then serves the console on stdin until QUIT,
// end of input or a signal.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName, config.Defaults())
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	// Logs go to stderr; stdout belongs to the console.
	logger := bootstrap.NewLoggerTo(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", "config", cfg.String())

	shutdownTracing := func(context.Context) error { return nil }
	if cfg.Telemetry.Tracing.Enabled {
		tp := telemetry.NewTracerProvider(cfg.Telemetry.Tracing.ServiceName)
		shutdownTracing = tp.Shutdown
	}

	deps := app.SetupDependencies(cfg, logger)
	if err := app.Populate(ctx, deps, cfg); err != nil {
		return err
	}
	cons := app.SetupConsole(deps, os.Stdout)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(runCtx)

	// Serve the console; leaving it stops the application
	g.Go(func() error {
		defer cancel()
		return cons.Run(gCtx, os.Stdin)
	})
	// flush tracing on shutdown
	g.Go(func() error {
		<-gCtx.Done()
		logger.Debug("Shutting down tracer provider...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancelShutdown()
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
