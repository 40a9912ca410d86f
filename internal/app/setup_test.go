package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = "COMPUTERS\nAcer Laptop\n989.0\n99\n\nBOOKS\nBook\n12.99\n14 12\nAhm Gonna Make You Learn:Legs Diamond:1999\n"

func testConfig(t *testing.T, catalogContent string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.txt")
	require.NoError(t, os.WriteFile(path, []byte(catalogContent), 0o600))
	cfg := &config.Config{}
	cfg.Catalog.File = path
	cfg.Orders.RestockOnCancel = true
	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_Populate_DefaultCustomers(t *testing.T) {
	// given
	ctx := context.Background()
	cfg := testConfig(t, catalog)
	deps := SetupDependencies(cfg, testLogger())

	// when
	err := Populate(ctx, deps, cfg)

	// then
	require.NoError(t, err)
	products := deps.Service.Products(ctx)
	require.Len(t, products, 2)
	assert.Equal(t, "700", products[0].ID())
	assert.Equal(t, "701", products[1].ID())

	customers := deps.Service.Customers(ctx)
	require.Len(t, customers, 4)
	assert.Equal(t, "900", customers[0].ID)
	assert.Equal(t, "Inigo Montoya", customers[0].Name)
	assert.Equal(t, "903", customers[3].ID)
	assert.Equal(t, "Ferris Bueller", customers[3].Name)
}

func Test_Populate_ConfiguredCustomers(t *testing.T) {
	// given
	ctx := context.Background()
	cfg := testConfig(t, catalog)
	cfg.Seed.Customers = []domain.CustomerSeed{{Name: "Bob", Address: "1 Main St"}}
	deps := SetupDependencies(cfg, testLogger())

	// when
	err := Populate(ctx, deps, cfg)

	// then
	require.NoError(t, err)
	customers := deps.Service.Customers(ctx)
	require.Len(t, customers, 1)
	assert.Equal(t, "Bob", customers[0].Name)
}

func Test_Populate_BadCatalog(t *testing.T) {
	// given
	cfg := testConfig(t, "TOYS\nYoyo\n1.0\n1\n\n")
	deps := SetupDependencies(cfg, testLogger())

	// when
	err := Populate(context.Background(), deps, cfg)

	// then
	assert.ErrorContains(t, err, "catalog record 1")
	assert.Empty(t, deps.Service.Products(context.Background()))
}

func Test_SetupConsole(t *testing.T) {
	// given
	ctx := context.Background()
	cfg := testConfig(t, catalog)
	deps := SetupDependencies(cfg, testLogger())
	require.NoError(t, Populate(ctx, deps, cfg))
	out := &bytes.Buffer{}

	// when
	err := SetupConsole(deps, out).Run(ctx, strings.NewReader("ORDERBOOK\n701\n903\nhardcover\nQ\n"))

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Order #500")
}
