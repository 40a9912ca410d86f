// Package app contains the application setup for the storefront.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/storefront/internal/catalogfile"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/console"
	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/internal/seed"
	"github.com/abgdnv/storefront/internal/service"
	"github.com/abgdnv/storefront/pkg/messaging"
)

type Dependencies struct {
	Service *service.Service
	Logger  *slog.Logger
}

// SetupDependencies wires the service over in-memory stores. Order events go to the log.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	svc := service.NewService(
		service.NewInMemoryStores(),
		messaging.NewLogPublisher(logger),
		logger,
		service.Policy{
			RestockOnCancel:          cfg.Orders.RestockOnCancel,
			HistoryIncludesCancelled: cfg.Orders.HistoryIncludesCancelled,
		},
	)
	return &Dependencies{Service: svc, Logger: logger}
}

// Populate loads the catalog file and registers the startup customers. The configured customers
// replace the built-in ones when present.
func Populate(ctx context.Context, deps *Dependencies, cfg *config.Config) error {
	seeds, err := catalogfile.LoadFile(cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	if _, err := deps.Service.LoadCatalog(ctx, seeds); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	customers := cfg.Seed.Customers
	if len(customers) == 0 {
		customers = seed.DefaultCustomers()
	}
	return registerCustomers(ctx, deps.Service, customers)
}

func registerCustomers(ctx context.Context, svc service.CatalogService, customers []domain.CustomerSeed) error {
	for _, c := range customers {
		if _, err := svc.CreateCustomer(ctx, c.Name, c.Address); err != nil {
			return fmt.Errorf("failed to register customer %q: %w", c.Name, err)
		}
	}
	return nil
}

// SetupConsole creates the command console over the service.
func SetupConsole(deps *Dependencies, out io.Writer) *console.Console {
	return console.New(deps.Service, out, deps.Logger)
}
