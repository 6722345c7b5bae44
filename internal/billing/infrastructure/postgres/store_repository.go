package postgres

import (
	"context"
	"fmt"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
)

type StoreRepository struct {
	db database.QueryExecuter
}

func NewStoreRepository(db database.QueryExecuter) *StoreRepository {
	return &StoreRepository{db: db}
}

func (sr *StoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	listStoresSQL := `SELECT id, name, location FROM stores ORDER BY name`

	rows, err := sr.db.Query(ctx, listStoresSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(&store.Id, &store.Name, &store.Location); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, store)
	}

	return stores, rows.Err()
}

func (sr *StoreRepository) CreateStore(ctx context.Context, store domain.Store) error {
	insertStoreSQL := `INSERT INTO stores (id, name, location) VALUES ($1, $2, $3)`

	_, err := sr.db.Exec(ctx, insertStoreSQL, store.Id, store.Name, store.Location)
	if err != nil {
		return fmt.Errorf("failed to insert store: %w", err)
	}

	return nil
}
