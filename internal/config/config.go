package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/pkg/config"
	"github.com/abgdnv/storefront/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log       config.LogConfig       `koanf:"log"`
	Catalog   config.CatalogConfig   `koanf:"catalog"`
	Orders    config.OrdersConfig    `koanf:"orders"`
	Telemetry config.TelemetryConfig `koanf:"telemetry"`
	Shutdown  config.ShutdownConfig  `koanf:"shutdown"`
	Seed      struct {
		Customers []domain.CustomerSeed `koanf:"customers"`
	} `koanf:"seed"`
}

// Defaults returns the configuration used when no source overrides a key.
func Defaults() map[string]any {
	return map[string]any{
		"log.level":                       "info",
		"catalog.file":                    "products.txt",
		"orders.restockoncancel":          true,
		"orders.historyincludescancelled": false,
		"telemetry.tracing.enabled":       true,
		"telemetry.tracing.servicename":   "storefront",
		"shutdown.timeout":                5 * time.Second,
	}
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString(c.Log.String())
	b.WriteString(c.Catalog.String())
	b.WriteString(c.Orders.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Shutdown.String())

	b.WriteString("\n--- Seed ---\n")
	b.WriteString(fmt.Sprintf("  seed.customers: %d configured\n", len(c.Seed.Customers)))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if err := c.Orders.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	for i, customer := range c.Seed.Customers {
		if customer.Name == "" || customer.Address == "" {
			return fmt.Errorf("seed customer %d: name and address are required", i+1)
		}
	}

	return nil
}
