package memory

import (
	"sync"
	"testing"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, products ...domain.Product) *CatalogStore {
	t.Helper()

	catalog := NewCatalogStore()
	for _, product := range products {
		require.NoError(t, catalog.CreateProduct(t.Context(), product))
	}
	return catalog
}

func TestCatalogStore_AdjustStock(t *testing.T) {
	t.Parallel()

	t.Run("applies delta", func(t *testing.T) {
		t.Parallel()
		catalog := newTestCatalog(t, domain.Product{Id: "p1", Name: "Steel Rod", Stock: decimal.NewFromInt(100)})

		newStock, err := catalog.AdjustStock(t.Context(), "p1", decimal.NewFromInt(-5))

		require.NoError(t, err)
		assert.True(t, newStock.Equal(decimal.NewFromInt(95)))

		stock, err := catalog.GetStock(t.Context(), "p1")
		require.NoError(t, err)
		assert.True(t, stock.Equal(decimal.NewFromInt(95)))
	})

	t.Run("stock may go negative", func(t *testing.T) {
		t.Parallel()
		catalog := newTestCatalog(t, domain.Product{Id: "p1", Name: "Steel Rod", Stock: decimal.NewFromInt(3)})

		newStock, err := catalog.AdjustStock(t.Context(), "p1", decimal.NewFromInt(-10))

		require.NoError(t, err)
		assert.True(t, newStock.Equal(decimal.NewFromInt(-7)))
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()
		catalog := NewCatalogStore()

		_, err := catalog.AdjustStock(t.Context(), "missing", decimal.NewFromInt(1))

		assert.ErrorIs(t, err, &domain.ProductNotFoundError{})
	})
}

func TestCatalogStore_ConcurrentAdjustments(t *testing.T) {
	t.Parallel()

	const workers = 50

	catalog := newTestCatalog(t, domain.Product{Id: "p1", Name: "Steel Rod", Stock: decimal.NewFromInt(1000)})
	adjuster := domain.NewStockAdjuster(catalog)

	items := []domain.LineItem{
		{ProductId: "p1", Quantity: decimal.NewFromInt(1), Type: domain.ItemTypeSold},
	}

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = adjuster.Apply(t.Context(), items)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "worker %d", i)
	}

	// Every decrement must land exactly once despite the races.
	stock, err := catalog.GetStock(t.Context(), "p1")
	require.NoError(t, err)
	assert.True(t, stock.Equal(decimal.NewFromInt(1000-workers)),
		"want %d, got %s", 1000-workers, stock)
}

func TestCatalogStore_CreateProduct(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t, domain.Product{Id: "p1", Name: "Steel Rod"})

	err := catalog.CreateProduct(t.Context(), domain.Product{Id: "p1", Name: "Duplicate"})

	assert.ErrorIs(t, err, &domain.ValidationError{})
}

func TestCatalogStore_ListProducts_SortedByName(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(t,
		domain.Product{Id: "p1", Name: "Steel Rod"},
		domain.Product{Id: "p2", Name: "Aluminium Sheet"},
		domain.Product{Id: "p3", Name: "Copper Wire"},
	)

	products, err := catalog.ListProducts(t.Context())

	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Aluminium Sheet", products[0].Name)
	assert.Equal(t, "Copper Wire", products[1].Name)
	assert.Equal(t, "Steel Rod", products[2].Name)
}

func TestCatalogStore_UpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("updates fields", func(t *testing.T) {
		t.Parallel()
		catalog := newTestCatalog(t, domain.Product{Id: "p1", Name: "Steel Rod", Stock: decimal.NewFromInt(10)})

		err := catalog.UpdateProduct(t.Context(), domain.Product{Id: "p1", Name: "Steel Rod 12mm", Stock: decimal.NewFromInt(25)})
		require.NoError(t, err)

		product, err := catalog.GetProduct(t.Context(), "p1")
		require.NoError(t, err)
		assert.Equal(t, "Steel Rod 12mm", product.Name)
		assert.True(t, product.Stock.Equal(decimal.NewFromInt(25)))
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()
		catalog := NewCatalogStore()

		err := catalog.UpdateProduct(t.Context(), domain.Product{Id: "missing"})

		assert.ErrorIs(t, err, &domain.ProductNotFoundError{})
	})
}
