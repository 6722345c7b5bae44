package application

import (
	"context"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
)

// DeleteTransactionCase voids a bill: reverse its stock effect, then remove
// the record. Reverse-then-remove is deliberate: a crash in between leaves
// the bill present with its reversal already applied, which a repeated
// delete makes visible and fixable. The other order would silently lose the
// reversal forever.
type DeleteTransactionCase struct {
	applier domain.StockApplier
	ledger  domain.TransactionLedger
	logger  logging.Logger
}

func NewDeleteTransactionCase(
	applier domain.StockApplier,
	ledger domain.TransactionLedger,
	logger logging.Logger,
) *DeleteTransactionCase {
	return &DeleteTransactionCase{
		applier: applier,
		ledger:  ledger,
		logger:  logger,
	}
}

func (c *DeleteTransactionCase) DeleteTransaction(ctx context.Context, id string) error {
	transaction, err := c.ledger.Get(ctx, id)
	if err != nil {
		return err
	}

	if _, err := c.applier.Reverse(ctx, transaction.Items); err != nil {
		return err
	}

	if err := c.ledger.Delete(ctx, id); err != nil {
		c.logger.Error("bill removal failed after stock reversal, re-delete to reconcile",
			"transaction", id, "error", err)
		return err
	}

	return nil
}
