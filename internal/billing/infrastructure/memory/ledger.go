package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

// Ledger keeps persisted bills in memory, keyed by id, with a secondary
// index on invoice id to enforce its uniqueness.
type Ledger struct {
	mu        sync.RWMutex
	byId      map[string]domain.Transaction
	byInvoice map[string]string
}

func NewLedger() *Ledger {
	return &Ledger{
		byId:      make(map[string]domain.Transaction),
		byInvoice: make(map[string]string),
	}
}

func (l *Ledger) Save(ctx context.Context, transaction domain.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byId[transaction.Id]; exists {
		return &domain.ValidationError{Msg: fmt.Sprintf("transaction %s already exists", transaction.Id)}
	}

	if transaction.InvoiceId != "" {
		if _, taken := l.byInvoice[transaction.InvoiceId]; taken {
			return &domain.ValidationError{Msg: fmt.Sprintf("invoice id %s already used", transaction.InvoiceId)}
		}
		l.byInvoice[transaction.InvoiceId] = transaction.Id
	}

	l.byId[transaction.Id] = transaction
	return nil
}

func (l *Ledger) Get(ctx context.Context, id string) (domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	tx, ok := l.byId[id]
	if !ok {
		return domain.Transaction{}, &domain.TransactionNotFoundError{Msg: fmt.Sprintf("transaction %s not found", id)}
	}

	return tx, nil
}

func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.byId[id]
	if !ok {
		return &domain.TransactionNotFoundError{Msg: fmt.Sprintf("transaction %s not found", id)}
	}

	delete(l.byId, id)
	if tx.InvoiceId != "" {
		delete(l.byInvoice, tx.InvoiceId)
	}

	return nil
}

func (l *Ledger) List(ctx context.Context) ([]domain.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	transactions := make([]domain.Transaction, 0, len(l.byId))
	for _, tx := range l.byId {
		transactions = append(transactions, tx)
	}

	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].CreatedAt.Equal(transactions[j].CreatedAt) {
			return transactions[i].Id > transactions[j].Id
		}
		return transactions[i].CreatedAt.After(transactions[j].CreatedAt)
	})

	return transactions, nil
}
