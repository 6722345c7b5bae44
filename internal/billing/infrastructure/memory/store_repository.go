package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

type StoreRepository struct {
	mu sync.RWMutex
	m  map[string]domain.Store
}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{m: make(map[string]domain.Store)}
}

func (sr *StoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	stores := make([]domain.Store, 0, len(sr.m))
	for _, s := range sr.m {
		stores = append(stores, s)
	}

	sort.Slice(stores, func(i, j int) bool {
		return stores[i].Name < stores[j].Name
	})

	return stores, nil
}

func (sr *StoreRepository) CreateStore(ctx context.Context, store domain.Store) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	if _, exists := sr.m[store.Id]; exists {
		return &domain.ValidationError{Msg: fmt.Sprintf("store %s already exists", store.Id)}
	}

	sr.m[store.Id] = store
	return nil
}
