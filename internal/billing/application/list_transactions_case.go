package application

import (
	"context"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

type ListTransactionsCase struct {
	ledger domain.TransactionLedger
}

func NewListTransactionsCase(ledger domain.TransactionLedger) *ListTransactionsCase {
	return &ListTransactionsCase{ledger: ledger}
}

// ListTransactions returns all bills, newest first.
func (c *ListTransactionsCase) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return c.ledger.List(ctx)
}
