package domain

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// AppliedAdjustment records one stock delta that actually landed, so a later
// failure can undo exactly that delta and nothing else.
type AppliedAdjustment struct {
	ProductId string
	Delta     decimal.Decimal
}

// AdjustmentResult reports which deltas landed and which items were skipped
// because their product no longer exists in the catalog. Skips are a partial
// success, not a failure; callers surface them as a warning.
type AdjustmentResult struct {
	Applied         []AppliedAdjustment
	SkippedProducts []string
}

type StockApplier interface {
	Apply(ctx context.Context, items []LineItem) (AdjustmentResult, error)
	Reverse(ctx context.Context, items []LineItem) (AdjustmentResult, error)
	Rollback(ctx context.Context, applied []AppliedAdjustment) error
}

const (
	defaultMaxAttempts = 5
	defaultRetryDelay  = 2 * time.Millisecond
)

// StockAdjuster translates a bill's line items into stock deltas against the
// catalog. Apply and Reverse share one sign rule so the two directions cannot
// drift apart: a sold item subtracts its quantity on apply, a bought item
// adds it, and reverse negates whatever apply would do.
type StockAdjuster struct {
	catalog     CatalogStore
	maxAttempts int
	retryDelay  time.Duration
}

func NewStockAdjuster(catalog CatalogStore) *StockAdjuster {
	return &StockAdjuster{
		catalog:     catalog,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
}

func (sa *StockAdjuster) Apply(ctx context.Context, items []LineItem) (AdjustmentResult, error) {
	return sa.adjustAll(ctx, items, false)
}

func (sa *StockAdjuster) Reverse(ctx context.Context, items []LineItem) (AdjustmentResult, error) {
	return sa.adjustAll(ctx, items, true)
}

func (sa *StockAdjuster) adjustAll(ctx context.Context, items []LineItem, reverse bool) (AdjustmentResult, error) {
	var result AdjustmentResult

	for _, item := range items {
		delta := adjustmentDelta(item, reverse)

		_, err := sa.adjustWithRetry(ctx, item.ProductId, delta)
		if err != nil {
			if errors.Is(err, &ProductNotFoundError{}) {
				result.SkippedProducts = append(result.SkippedProducts, item.ProductId)
				continue
			}

			if rbErr := sa.Rollback(ctx, result.Applied); rbErr != nil {
				return result, rbErr
			}

			return AdjustmentResult{}, fmt.Errorf("failed to adjust stock for product %s: %w", item.ProductId, err)
		}

		result.Applied = append(result.Applied, AppliedAdjustment{
			ProductId: item.ProductId,
			Delta:     delta,
		})
	}

	return result, nil
}

// Rollback issues the inverse of each applied delta, newest first. A failure
// here means stock no longer matches the persisted bills, which is the one
// condition with no automatic recovery; the returned CompensationError lists
// the deltas left dangling for manual reconciliation.
func (sa *StockAdjuster) Rollback(ctx context.Context, applied []AppliedAdjustment) error {
	var dangling []AppliedAdjustment

	for i := len(applied) - 1; i >= 0; i-- {
		adj := applied[i]

		_, err := sa.adjustWithRetry(ctx, adj.ProductId, adj.Delta.Neg())
		if err != nil {
			dangling = append(dangling, adj)
		}
	}

	if len(dangling) > 0 {
		return &CompensationError{
			Msg:         fmt.Sprintf("failed to roll back %d stock adjustment(s)", len(dangling)),
			Adjustments: dangling,
		}
	}

	return nil
}

func (sa *StockAdjuster) adjustWithRetry(ctx context.Context, productId string, delta decimal.Decimal) (decimal.Decimal, error) {
	delay := sa.retryDelay

	var lastErr error
	for attempt := 0; attempt < sa.maxAttempts; attempt++ {
		newStock, err := sa.catalog.AdjustStock(ctx, productId, delta)
		if err == nil {
			return newStock, nil
		}

		if !errors.Is(err, &ConflictError{}) {
			return decimal.Zero, err
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return decimal.Zero, ctx.Err()
		case <-time.After(delay + rand.N(delay)):
		}
		delay *= 2
	}

	return decimal.Zero, fmt.Errorf("retry budget exhausted for product %s: %w", productId, lastErr)
}

func adjustmentDelta(item LineItem, reverse bool) decimal.Decimal {
	delta := item.Quantity
	if item.Type == ItemTypeSold {
		delta = delta.Neg()
	}
	if reverse {
		delta = delta.Neg()
	}
	return delta
}
