package docstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minivyapar/vyapar_ledger/internal/apperrors"
	"github.com/minivyapar/vyapar_ledger/internal/core/domain"
	portsrepo "github.com/minivyapar/vyapar_ledger/internal/core/ports/repositories"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/database/memory"
	"github.com/minivyapar/vyapar_ledger/internal/repositories/docstore"
)

func newProvider() *portsrepo.RepositoryProvider {
	return docstore.NewRepositoryProvider(memory.NewStore())
}

func TestProductRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	cost := decimal.RequireFromString("6")
	product := domain.Product{
		ProductID:         "p1",
		Name:              "Tea",
		Category:          "Beverages",
		CostPrice:         cost,
		SellingPrice:      decimal.RequireFromString("10"),
		Stock:             25,
		LowStockThreshold: 5,
		Supplier:          "Chai Traders",
		Code:              "TEA-001",
		Icon:              "🍵",
	}
	require.NoError(t, repos.ProductRepo.SaveProduct(ctx, product))

	loaded, err := repos.ProductRepo.FindProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, product.Name, loaded.Name)
	assert.Equal(t, product.Category, loaded.Category)
	assert.True(t, loaded.CostPrice.Equal(cost))
	assert.True(t, loaded.SellingPrice.Equal(product.SellingPrice))
	assert.Equal(t, 25, loaded.Stock)
	assert.Equal(t, "🍵", loaded.Icon)
}

func TestProductRepository_LegacyRecordGetsDefaults(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := docstore.NewRepositoryProvider(store)

	// Records written before icons, categories and thresholds existed lack
	// all three fields.
	legacy := []byte(`{"id":"p1","name":"Tea","sellingPrice":"10","stock":5}`)
	_, err := store.Put(ctx, portsrepo.CollectionProducts, "p1", legacy)
	require.NoError(t, err)

	loaded, err := repos.ProductRepo.FindProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProductIcon, loaded.Icon)
	assert.Equal(t, domain.DefaultProductCategory, loaded.Category)
	assert.Equal(t, domain.DefaultLowStockThreshold, loaded.LowStockThreshold)
	assert.True(t, loaded.IsLowStock())
}

func TestProductRepository_FindMissing(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	_, err := repos.ProductRepo.FindProductByID(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductRepository_SaveProductsBatch(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	batch := []domain.Product{
		{ProductID: "a", Name: "Tea", SellingPrice: decimal.RequireFromString("10"), Stock: 5},
		{ProductID: "b", Name: "Milk", SellingPrice: decimal.RequireFromString("25"), Stock: 3},
	}
	require.NoError(t, repos.ProductRepo.SaveProducts(ctx, batch))

	listed, err := repos.ProductRepo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestSaleRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	cost := decimal.RequireFromString("6")
	sale := domain.Sale{
		SaleID: "s1",
		Items: []domain.SaleItem{{
			ProductID:         "p1",
			Name:              "Tea",
			UnitPrice:         decimal.RequireFromString("10"),
			Quantity:          2,
			LineTotal:         decimal.RequireFromString("20"),
			CostPriceSnapshot: &cost,
		}},
		Total:       decimal.RequireFromString("20"),
		PaymentType: domain.PaymentUPI,
		Timestamp:   time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.SaleRepo.SaveSale(ctx, sale))

	sales, err := repos.SaleRepo.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "s1", sales[0].SaleID)
	assert.Equal(t, domain.PaymentUPI, sales[0].PaymentType)
	require.Len(t, sales[0].Items, 1)
	require.NotNil(t, sales[0].Items[0].CostPriceSnapshot)
	assert.True(t, sales[0].Items[0].CostPriceSnapshot.Equal(cost))
	assert.True(t, sales[0].HasCostSnapshots())
}

func TestExpenseRepository_RoundTripAndDelete(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	expense := domain.Expense{
		ExpenseID:   "e1",
		Description: "Rent",
		Amount:      decimal.RequireFromString("5000"),
		Category:    "Fixed",
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repos.ExpenseRepo.SaveExpense(ctx, expense))

	loaded, err := repos.ExpenseRepo.FindExpenseByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Rent", loaded.Description)
	assert.True(t, loaded.Amount.Equal(expense.Amount))

	found, err := repos.ExpenseRepo.DeleteExpense(ctx, "e1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repos.ExpenseRepo.DeleteExpense(ctx, "e1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreditRepository_EmptyBookIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	credits, err := repos.CreditRepo.ListCredits(ctx)
	require.NoError(t, err)
	assert.Empty(t, credits)
}

func TestCreditRepository_BookPersistsUnderPreferenceKey(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := docstore.NewRepositoryProvider(store)

	paid := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	book := []domain.Credit{
		{CreditID: "c1", CustomerName: "Ramesh", Amount: decimal.RequireFromString("500"), Date: paid.AddDate(0, 0, -5), Status: domain.CreditActive},
		{CreditID: "c2", CustomerName: "Suresh", Amount: decimal.RequireFromString("250"), Date: paid.AddDate(0, 0, -2), Status: domain.CreditPaid, PaidDate: &paid},
	}
	require.NoError(t, repos.CreditRepo.SaveCredits(ctx, book))

	// The book lives as a single preference document.
	raw, err := store.GetPreference(ctx, domain.PrefCreditsData)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Ramesh")

	loaded, err := repos.CreditRepo.ListCredits(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, domain.CreditActive, loaded[0].Status)
	assert.Equal(t, domain.CreditPaid, loaded[1].Status)
	require.NotNil(t, loaded[1].PaidDate)
}

func TestPreferenceRepository_TypedRoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := newProvider()

	require.NoError(t, repos.PreferenceRepo.SetPreference(ctx, "theme", "dark"))

	var theme string
	require.NoError(t, repos.PreferenceRepo.GetPreference(ctx, "theme", &theme))
	assert.Equal(t, "dark", theme)

	require.NoError(t, repos.PreferenceRepo.DeletePreference(ctx, "theme"))
	err := repos.PreferenceRepo.GetPreference(ctx, "theme", &theme)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
