package app_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minivyapar/vyapar_ledger/internal/app"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/dto"
	"github.com/minivyapar/vyapar_ledger/internal/platform/config"
)

func testConfig(path string) *config.Config {
	return &config.Config{
		StorePath:                path,
		RecentSalesCacheSize:     50,
		DefaultLowStockThreshold: 10,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBootstrap_ReadyMode(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vyapar.db")

	a, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, portsrepo.ModeReady, a.Mode())
	assert.NotNil(t, a.Services.Inventory)
	assert.NotNil(t, a.Services.Recorder)
	assert.NotNil(t, a.Services.Credit)
	assert.NotNil(t, a.Services.Settings)
	assert.NotNil(t, a.Cart)
}

func TestBootstrap_UnwritablePathDegrades(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing", "nested", "vyapar.db")

	a, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)
	defer a.Close()

	// Startup never fails on storage; it degrades.
	assert.Equal(t, portsrepo.ModeDegraded, a.Mode())

	// The full API still works in degraded mode.
	product, err := a.Services.Inventory.CreateProduct(ctx, dto.CreateProductRequest{
		Name:         "Tea",
		SellingPrice: decimal.RequireFromString("10"),
		Stock:        5,
	})
	require.NoError(t, err)

	_, err = a.Cart.AddLine(ctx, product.ProductID, 2)
	require.NoError(t, err)
	receipt, err := a.Cart.Checkout(ctx, domain.PaymentCash)
	require.NoError(t, err)
	assert.Equal(t, "20", receipt.Total.String())
}

func TestBootstrap_SeedsPreferenceDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vyapar.db")

	a, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "light", a.Services.Settings.Theme(ctx))
	require.NoError(t, a.Services.Settings.SetTheme(ctx, "dark"))
	require.NoError(t, a.Close())

	// A restart must not clobber operator choices back to defaults.
	reopened, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, "dark", reopened.Services.Settings.Theme(ctx))
}

func TestBootstrap_StateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vyapar.db")

	a, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)

	product, err := a.Services.Inventory.CreateProduct(ctx, dto.CreateProductRequest{
		Name:         "Tea",
		SellingPrice: decimal.RequireFromString("10"),
		Stock:        20,
	})
	require.NoError(t, err)

	_, err = a.Cart.AddLine(ctx, product.ProductID, 3)
	require.NoError(t, err)
	_, err = a.Cart.Checkout(ctx, domain.PaymentUPI)
	require.NoError(t, err)

	_, err = a.Services.Credit.AddCredit(ctx, dto.CreateCreditRequest{
		CustomerName: "Ramesh",
		Amount:       decimal.RequireFromString("500"),
	})
	require.NoError(t, err)
	require.NoError(t, a.Close())

	reopened, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)
	defer reopened.Close()

	// Catalog, transaction log and credit book all survived.
	loaded, err := reopened.Services.Inventory.GetProduct(ctx, product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, 17, loaded.Stock)

	totals, err := reopened.Services.Recorder.AggregateByWindow(ctx, domain.WindowToday, domain.AggregateSales)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.Count)
	assert.Equal(t, "30", totals.Total.String())

	outstanding, err := reopened.Services.Credit.OutstandingTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "500", outstanding.String())
}

func TestBootstrap_CartSnapshotRestored(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "vyapar.db")

	a, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)

	product, err := a.Services.Inventory.CreateProduct(ctx, dto.CreateProductRequest{
		Name:         "Tea",
		SellingPrice: decimal.RequireFromString("10"),
		Stock:        20,
	})
	require.NoError(t, err)

	_, err = a.Cart.AddLine(ctx, product.ProductID, 4)
	require.NoError(t, err)
	require.NoError(t, a.Close())

	// An abandoned cart comes back after restart.
	reopened, err := app.Bootstrap(ctx, testConfig(path), quietLogger())
	require.NoError(t, err)
	defer reopened.Close()

	lines := reopened.Cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, product.ProductID, lines[0].ProductID)
	assert.Equal(t, 4, lines[0].Quantity)
}
