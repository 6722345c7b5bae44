package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	mocks "github.com/murugannagaraja781/billingsoftware/gen/mocks/billinghttp"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/application"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonRequest(t *testing.T, method string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestTransactionHandler_Create(t *testing.T) {
	t.Parallel()

	validBody := gin.H{
		"customerName": "Kumar",
		"items": []gin.H{
			{"productId": "p1", "productName": "Steel Rod", "quantity": "5", "unitPrice": "10", "type": "sold"},
			{"productId": "p2", "quantity": "2", "unitPrice": "3", "type": "bought"},
		},
	}

	type testCase struct {
		name           string
		body           any
		operator       string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) TransactionCreator
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful create",
			body:           validBody,
			operator:       "asha",
			expectedStatus: http.StatusCreated,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				mockCreator := mocks.NewMockTransactionCreator(ctrl)
				mockCreator.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, input application.CreateTransactionInput) (application.CreateTransactionResult, error) {
						assert.Equal(t, "Kumar", input.CustomerName)
						assert.Equal(t, "asha", input.RecordedBy)
						require.Len(t, input.Items, 2)
						assert.Equal(t, domain.ItemTypeSold, input.Items[0].Type)
						assert.True(t, input.Items[0].Quantity.Equal(decimal.NewFromInt(5)))

						return application.CreateTransactionResult{
							Transaction:     domain.Transaction{Id: "tx-1", CustomerName: "Kumar"},
							SkippedProducts: []string{"p2"},
						}, nil
					})

				return mockCreator
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var response createTransactionResponseBody
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
				assert.Equal(t, "tx-1", response.Transaction.Id)
				assert.Equal(t, []string{"p2"}, response.SkippedProducts)
			},
		},
		{
			name:           "missing customer name",
			body:           gin.H{"items": []gin.H{{"productId": "p1", "type": "sold"}}},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				return mocks.NewMockTransactionCreator(ctrl)
			},
		},
		{
			name: "unknown item type",
			body: gin.H{
				"customerName": "Kumar",
				"items":        []gin.H{{"productId": "p1", "quantity": "1", "unitPrice": "10", "type": "returned"}},
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				return mocks.NewMockTransactionCreator(ctrl)
			},
		},
		{
			name:           "validation error from the case",
			body:           validBody,
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				mockCreator := mocks.NewMockTransactionCreator(ctrl)
				mockCreator.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(application.CreateTransactionResult{}, &domain.ValidationError{Msg: "invoice id INV-1 already used"})

				return mockCreator
			},
		},
		{
			name:           "conflict maps to 409",
			body:           validBody,
			expectedStatus: http.StatusConflict,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				mockCreator := mocks.NewMockTransactionCreator(ctrl)
				mockCreator.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(application.CreateTransactionResult{}, &domain.ConflictError{Msg: "concurrent stock update"})

				return mockCreator
			},
		},
		{
			name:           "internal error",
			body:           validBody,
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionCreator {
				mockCreator := mocks.NewMockTransactionCreator(ctrl)
				mockCreator.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(application.CreateTransactionResult{}, assert.AnError)

				return mockCreator
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockCreator := tt.prepareFn(t, ctrl)
			handler := NewTransactionHandler(mockCreator, mocks.NewMockTransactionDeleter(ctrl), mocks.NewMockTransactionLister(ctrl))

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = jsonRequest(t, http.MethodPost, tt.body)
			if tt.operator != "" {
				c.Request.Header.Set(OperatorHeader, tt.operator)
			}

			handler.Create(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestTransactionHandler_Delete(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn func(t *testing.T, ctrl *gomock.Controller) TransactionDeleter
	}

	tests := []testCase{
		{
			name:           "successful delete",
			expectedStatus: http.StatusNoContent,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionDeleter {
				mockDeleter := mocks.NewMockTransactionDeleter(ctrl)
				mockDeleter.EXPECT().
					DeleteTransaction(gomock.Any(), "tx-1").
					Return(nil)

				return mockDeleter
			},
		},
		{
			name:           "transaction not found",
			expectedStatus: http.StatusNotFound,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionDeleter {
				mockDeleter := mocks.NewMockTransactionDeleter(ctrl)
				mockDeleter.EXPECT().
					DeleteTransaction(gomock.Any(), "tx-1").
					Return(&domain.TransactionNotFoundError{Msg: "transaction tx-1 not found"})

				return mockDeleter
			},
		},
		{
			name:           "internal error",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) TransactionDeleter {
				mockDeleter := mocks.NewMockTransactionDeleter(ctrl)
				mockDeleter.EXPECT().
					DeleteTransaction(gomock.Any(), "tx-1").
					Return(assert.AnError)

				return mockDeleter
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockDeleter := tt.prepareFn(t, ctrl)
			handler := NewTransactionHandler(mocks.NewMockTransactionCreator(ctrl), mockDeleter, mocks.NewMockTransactionLister(ctrl))

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
			c.Params = gin.Params{{Key: TransactionIdKey, Value: "tx-1"}}

			handler.Delete(c)
			// gin buffers a body-less Status() on a test context; flush it
			// so the recorder observes the code.
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestTransactionHandler_List(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	t.Run("successful list", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		mockLister := mocks.NewMockTransactionLister(ctrl)
		mockLister.EXPECT().
			ListTransactions(gomock.Any()).
			Return([]domain.Transaction{{Id: "tx-2"}, {Id: "tx-1"}}, nil)

		handler := NewTransactionHandler(mocks.NewMockTransactionCreator(ctrl), mocks.NewMockTransactionDeleter(ctrl), mockLister)

		writer := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(writer)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		handler.List(c)

		assert.Equal(t, http.StatusOK, writer.Code)

		var response []domain.Transaction
		require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "tx-2", response[0].Id)
	})

	t.Run("internal error", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)

		mockLister := mocks.NewMockTransactionLister(ctrl)
		mockLister.EXPECT().
			ListTransactions(gomock.Any()).
			Return(nil, assert.AnError)

		handler := NewTransactionHandler(mocks.NewMockTransactionCreator(ctrl), mocks.NewMockTransactionDeleter(ctrl), mockLister)

		writer := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(writer)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		handler.List(c)

		assert.Equal(t, http.StatusInternalServerError, writer.Code)
	})
}
