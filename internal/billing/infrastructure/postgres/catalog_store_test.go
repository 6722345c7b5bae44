package postgres

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	loggingmocks "github.com/murugannagaraja781/billingsoftware/gen/mocks/logging"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_GetStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedStock string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:      "successful read",
			productId: "p1",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"stock"}).
					AddRow("100.5")
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnRows(rows)
			},
			expectedStock: "100.5",
		},
		{
			name:      "product not found",
			productId: "missing",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "database error",
			productId: "p1",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			catalogStore := NewCatalogStore(mock, loggingmocks.NewMockLogger(ctrl))
			stock, err := catalogStore.GetStock(t.Context(), tt.productId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, stock.Equal(decimal.RequireFromString(tt.expectedStock)))
			}
		})
	}
}

func TestCatalogStore_AdjustStock(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId string
		delta     string

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)

		expectedStock string
		expectedErr   error
	}

	tests := []testCase{
		{
			name:      "successful adjustment",
			productId: "p1",
			delta:     "-5",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				rows := pgxmock.NewRows([]string{"stock"}).
					AddRow("100")
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE products").
					WithArgs("95", "p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				// Rollback will be called in defer
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedStock: "95",
		},
		{
			name:      "stock goes negative",
			productId: "p1",
			delta:     "-10",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				rows := pgxmock.NewRows([]string{"stock"}).
					AddRow("3")
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE products").
					WithArgs("-7", "p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedStock: "-7",
		},
		{
			name:      "begin error",
			productId: "p1",
			delta:     "-5",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "product not found",
			productId: "missing",
			delta:     "-5",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "update error",
			productId: "p1",
			delta:     "-5",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				rows := pgxmock.NewRows([]string{"stock"}).
					AddRow("100")
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE products").
					WithArgs("95", "p1").
					WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "commit error",
			productId: "p1",
			delta:     "-5",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				rows := pgxmock.NewRows([]string{"stock"}).
					AddRow("100")
				mock.ExpectQuery("SELECT stock::text FROM products").
					WithArgs("p1").
					WillReturnRows(rows)
				mock.ExpectExec("UPDATE products").
					WithArgs("95", "p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			catalogStore := NewCatalogStore(mock, loggingmocks.NewMockLogger(ctrl))
			newStock, err := catalogStore.AdjustStock(t.Context(), tt.productId, decimal.RequireFromString(tt.delta))

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, newStock.Equal(decimal.RequireFromString(tt.expectedStock)))
			}
		})
	}
}
