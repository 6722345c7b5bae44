package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
)

type productState struct {
	product domain.Product
	version uint64
}

// CatalogStore keeps the product catalog in memory. Stock writes go through
// an optimistic compare-and-swap on a per-product version: the read and the
// write happen under separate lock acquisitions, and a version mismatch in
// between surfaces as a ConflictError for the caller to retry. Adjustments
// to different products never conflict.
type CatalogStore struct {
	mu sync.RWMutex
	m  map[string]productState
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{m: make(map[string]productState)}
}

func (cs *CatalogStore) GetStock(ctx context.Context, productId string) (decimal.Decimal, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	st, ok := cs.m[productId]
	if !ok {
		return decimal.Zero, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
	}

	return st.product.Stock, nil
}

func (cs *CatalogStore) AdjustStock(ctx context.Context, productId string, delta decimal.Decimal) (decimal.Decimal, error) {
	cs.mu.RLock()
	st, ok := cs.m[productId]
	cs.mu.RUnlock()

	if !ok {
		return decimal.Zero, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
	}

	// No floor at zero: negative stock is a business reality, not an error.
	newStock := st.product.Stock.Add(delta)

	cs.mu.Lock()
	defer cs.mu.Unlock()

	current, ok := cs.m[productId]
	if !ok {
		return decimal.Zero, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
	}
	if current.version != st.version {
		return decimal.Zero, &domain.ConflictError{Msg: fmt.Sprintf("concurrent stock update on product %s", productId)}
	}

	current.product.Stock = newStock
	current.version++
	cs.m[productId] = current

	return newStock, nil
}

func (cs *CatalogStore) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	st, ok := cs.m[id]
	if !ok {
		return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", id)}
	}

	return st.product, nil
}

func (cs *CatalogStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	products := make([]domain.Product, 0, len(cs.m))
	for _, st := range cs.m {
		products = append(products, st.product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

func (cs *CatalogStore) CreateProduct(ctx context.Context, product domain.Product) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, exists := cs.m[product.Id]; exists {
		return &domain.ValidationError{Msg: fmt.Sprintf("product %s already exists", product.Id)}
	}

	cs.m[product.Id] = productState{product: product}
	return nil
}

func (cs *CatalogStore) UpdateProduct(ctx context.Context, product domain.Product) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	st, ok := cs.m[product.Id]
	if !ok {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", product.Id)}
	}

	st.product = product
	st.version++
	cs.m[product.Id] = st
	return nil
}
