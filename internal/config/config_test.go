package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/abgdnv/storefront/internal/domain"
	"github.com/abgdnv/storefront/pkg/config/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	// given
	dir := t.TempDir()

	// when
	cfg, err := configloader.LoadFrom[*Config]("storefront", Defaults(), configloader.Sources{
		ConfigFile: filepath.Join(dir, "config.yaml"),
	})

	// then
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "products.txt", cfg.Catalog.File)
	assert.True(t, cfg.Orders.RestockOnCancel)
	assert.False(t, cfg.Orders.HistoryIncludesCancelled)
	assert.True(t, cfg.Telemetry.Tracing.Enabled)
	assert.Equal(t, "storefront", cfg.Telemetry.Tracing.ServiceName)
	assert.Equal(t, 5*time.Second, cfg.Shutdown.Timeout)
	assert.Empty(t, cfg.Seed.Customers)
}

func Test_Load_EnvOverrides(t *testing.T) {
	// given
	t.Setenv("STOREFRONT_ORDERS_HISTORYINCLUDESCANCELLED", "true")
	t.Setenv("STOREFRONT_CATALOG_FILE", "/data/catalog.txt")

	// when
	cfg, err := configloader.LoadFrom[*Config]("storefront", Defaults(), configloader.Sources{})

	// then
	require.NoError(t, err)
	assert.True(t, cfg.Orders.HistoryIncludesCancelled)
	assert.Equal(t, "/data/catalog.txt", cfg.Catalog.File)
}

func Test_Validate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Log.Level = "info"
		c.Catalog.File = "products.txt"
		c.Shutdown.Timeout = time.Second
		return c
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.Log.Level = "trace" }, wantErr: true},
		{name: "no catalog file", mutate: func(c *Config) { c.Catalog.File = " " }, wantErr: true},
		{name: "no shutdown timeout", mutate: func(c *Config) { c.Shutdown.Timeout = 0 }, wantErr: true},
		{name: "tracing without service name", mutate: func(c *Config) { c.Telemetry.Tracing.Enabled = true }, wantErr: true},
		{name: "seed customer without address", mutate: func(c *Config) {
			c.Seed.Customers = append(c.Seed.Customers, domain.CustomerSeed{Name: "Bob"})
		}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			c := valid()
			tc.mutate(c)
			// when
			err := c.Validate()
			// then
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
