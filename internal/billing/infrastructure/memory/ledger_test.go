package memory

import (
	"testing"
	"time"

	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTransaction(id, invoiceId string, createdAt time.Time) domain.Transaction {
	return domain.Transaction{
		Id:           id,
		CustomerName: "Kumar",
		InvoiceId:    invoiceId,
		NetAmount:    decimal.NewFromInt(44),
		CreatedAt:    createdAt,
	}
}

func TestLedger_Save(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("save and get", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		saved := testTransaction("tx-1", "INV-1", now)
		require.NoError(t, ledger.Save(t.Context(), saved))

		got, err := ledger.Get(t.Context(), "tx-1")
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "", now)))
		err := ledger.Save(t.Context(), testTransaction("tx-1", "", now))

		assert.ErrorIs(t, err, &domain.ValidationError{})
	})

	t.Run("duplicate invoice id rejected", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "INV-1", now)))
		err := ledger.Save(t.Context(), testTransaction("tx-2", "INV-1", now))

		assert.ErrorIs(t, err, &domain.ValidationError{})
	})

	t.Run("empty invoice ids never collide", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "", now)))
		assert.NoError(t, ledger.Save(t.Context(), testTransaction("tx-2", "", now)))
	})
}

func TestLedger_Delete(t *testing.T) {
	t.Parallel()

	now := time.Now()

	t.Run("delete removes the bill", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "INV-1", now)))
		require.NoError(t, ledger.Delete(t.Context(), "tx-1"))

		_, err := ledger.Get(t.Context(), "tx-1")
		assert.ErrorIs(t, err, &domain.TransactionNotFoundError{})
	})

	t.Run("delete frees the invoice id", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "INV-1", now)))
		require.NoError(t, ledger.Delete(t.Context(), "tx-1"))

		assert.NoError(t, ledger.Save(t.Context(), testTransaction("tx-2", "INV-1", now)))
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger()

		err := ledger.Delete(t.Context(), "missing")

		assert.ErrorIs(t, err, &domain.TransactionNotFoundError{})
	})
}

func TestLedger_List_NewestFirst(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-1", "", base)))
	require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-2", "", base.Add(2*time.Minute))))
	require.NoError(t, ledger.Save(t.Context(), testTransaction("tx-3", "", base.Add(time.Minute))))

	transactions, err := ledger.List(t.Context())

	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, "tx-2", transactions[0].Id)
	assert.Equal(t, "tx-3", transactions[1].Id)
	assert.Equal(t, "tx-1", transactions[2].Id)
}
