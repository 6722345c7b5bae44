package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// Ledger persists bills. Line items are stored as a jsonb document in the
// bill's row, mirroring the fact that a bill is immutable once written.
type Ledger struct {
	db        database.QueryExecuter
	txManager database.TxManager
}

func NewLedger(db database.QueryExecuter, txManager database.TxManager) *Ledger {
	return &Ledger{
		db:        db,
		txManager: txManager,
	}
}

func (l *Ledger) Save(ctx context.Context, transaction domain.Transaction) error {
	itemsJSON, err := json.Marshal(transaction.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal line items: %w", err)
	}

	return l.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if transaction.InvoiceId != "" {
			checkInvoiceSQL := `SELECT EXISTS(SELECT 1 FROM transactions WHERE invoice_id = $1)`

			var taken bool
			if err := executor.QueryRow(ctx, checkInvoiceSQL, transaction.InvoiceId).Scan(&taken); err != nil {
				return fmt.Errorf("failed to check invoice id: %w", err)
			}
			if taken {
				return &domain.ValidationError{Msg: fmt.Sprintf("invoice id %s already used", transaction.InvoiceId)}
			}
		}

		insertTransactionSQL := `
			INSERT INTO transactions (
				id, customer_name, customer_phone, items,
				total_new_amount, total_waste_amount, net_amount,
				payment_status, payment_method, invoice_id, store_id, recorded_by, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13)`

		_, err := executor.Exec(ctx, insertTransactionSQL,
			transaction.Id,
			transaction.CustomerName,
			transaction.CustomerPhone,
			itemsJSON,
			transaction.TotalNewAmount.String(),
			transaction.TotalWasteAmount.String(),
			transaction.NetAmount.String(),
			string(transaction.PaymentStatus),
			transaction.PaymentMethod,
			transaction.InvoiceId,
			transaction.StoreId,
			transaction.RecordedBy,
			transaction.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}

		return nil
	})
}

func (l *Ledger) Get(ctx context.Context, id string) (domain.Transaction, error) {
	getTransactionSQL := selectTransactionSQL + ` WHERE id = $1`

	row := l.db.QueryRow(ctx, getTransactionSQL, id)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, &domain.TransactionNotFoundError{Msg: fmt.Sprintf("transaction %s not found", id)}
		}

		return domain.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

func (l *Ledger) Delete(ctx context.Context, id string) error {
	deleteTransactionSQL := `DELETE FROM transactions WHERE id = $1`

	tag, err := l.db.Exec(ctx, deleteTransactionSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.TransactionNotFoundError{Msg: fmt.Sprintf("transaction %s not found", id)}
	}

	return nil
}

func (l *Ledger) List(ctx context.Context) ([]domain.Transaction, error) {
	listTransactionsSQL := selectTransactionSQL + ` ORDER BY created_at DESC, id DESC`

	rows, err := l.db.Query(ctx, listTransactionsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

const selectTransactionSQL = `
	SELECT id, customer_name, customer_phone, items,
	       total_new_amount::text, total_waste_amount::text, net_amount::text,
	       payment_status, payment_method, COALESCE(invoice_id, ''), store_id, recorded_by, created_at
	FROM transactions`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		tx         domain.Transaction
		itemsJSON  []byte
		totalNew   string
		totalWaste string
		net        string
		status     string
		createdAt  time.Time
	)

	err := row.Scan(
		&tx.Id, &tx.CustomerName, &tx.CustomerPhone, &itemsJSON,
		&totalNew, &totalWaste, &net,
		&status, &tx.PaymentMethod, &tx.InvoiceId, &tx.StoreId, &tx.RecordedBy, &createdAt,
	)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := json.Unmarshal(itemsJSON, &tx.Items); err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to unmarshal line items: %w", err)
	}

	if tx.TotalNewAmount, err = decimal.NewFromString(totalNew); err != nil {
		return domain.Transaction{}, err
	}
	if tx.TotalWasteAmount, err = decimal.NewFromString(totalWaste); err != nil {
		return domain.Transaction{}, err
	}
	if tx.NetAmount, err = decimal.NewFromString(net); err != nil {
		return domain.Transaction{}, err
	}

	tx.PaymentStatus = domain.PaymentStatus(status)
	tx.CreatedAt = createdAt

	return tx, nil
}
