package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
	"github.com/shopspring/decimal"
)

// CatalogStore adjusts product stock using a row lock per product: the
// SELECT FOR UPDATE serializes concurrent adjustments to the same product,
// while different products proceed in parallel. The lock is held only for
// the single read-modify-write, never across other I/O.
type CatalogStore struct {
	queryTxBeginner database.QueryTxBeginner
	logger          logging.Logger
}

func NewCatalogStore(queryTxBeginner database.QueryTxBeginner, logger logging.Logger) *CatalogStore {
	return &CatalogStore{
		queryTxBeginner: queryTxBeginner,
		logger:          logger,
	}
}

func (cs *CatalogStore) GetStock(ctx context.Context, productId string) (decimal.Decimal, error) {
	getStockSQL := `SELECT stock::text FROM products WHERE id = $1`

	var stockStr string
	err := cs.queryTxBeginner.QueryRow(ctx, getStockSQL, productId).Scan(&stockStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
		}

		return decimal.Zero, fmt.Errorf("failed to get stock: %w", err)
	}

	return decimal.NewFromString(stockStr)
}

func (cs *CatalogStore) AdjustStock(ctx context.Context, productId string, delta decimal.Decimal) (decimal.Decimal, error) {
	tx, err := cs.queryTxBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && err != pgx.ErrTxClosed {
			cs.logger.Error("failed to rollback transaction", "error", err)
		}
	}()

	stock, err := lockAndGetStock(ctx, tx, productId)
	if err != nil {
		return decimal.Zero, err
	}

	// Stock may go negative; it is never clamped or rejected here.
	newStock := stock.Add(delta)

	updateStockSQL := `UPDATE products SET stock = $1, updated_at = now() WHERE id = $2`
	_, err = tx.Exec(ctx, updateStockSQL, newStock.String(), productId)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to update stock: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return newStock, nil
}

func lockAndGetStock(ctx context.Context, querier database.Querier, productId string) (decimal.Decimal, error) {
	lockProductSQL := `SELECT stock::text FROM products WHERE id = $1 FOR UPDATE`

	var stockStr string
	err := querier.QueryRow(ctx, lockProductSQL, productId).Scan(&stockStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", productId)}
		}

		return decimal.Zero, fmt.Errorf("failed to lock product row: %w", err)
	}

	return decimal.NewFromString(stockStr)
}
