package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemTypeSold   ItemType = "sold"
	ItemTypeBought ItemType = "bought"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
)

// LineItemInput is one raw bill row as submitted by the operator.
type LineItemInput struct {
	ProductId   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Type        ItemType        `json:"type"`
}

// LineItem is a priced bill row. SubTotal is always Quantity * UnitPrice.
type LineItem struct {
	ProductId   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	SubTotal    decimal.Decimal `json:"subTotal"`
	Type        ItemType        `json:"type"`
}

// Transaction is one persisted bill. Immutable once created; the only
// lifecycle transition is hard deletion, which reverses its stock effect.
type Transaction struct {
	Id               string          `json:"id"`
	CustomerName     string          `json:"customerName"`
	CustomerPhone    string          `json:"customerPhone,omitempty"`
	Items            []LineItem      `json:"items"`
	TotalNewAmount   decimal.Decimal `json:"totalNewAmount"`
	TotalWasteAmount decimal.Decimal `json:"totalWasteAmount"`
	NetAmount        decimal.Decimal `json:"netAmount"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	PaymentMethod    string          `json:"paymentMethod"`
	InvoiceId        string          `json:"invoiceId,omitempty"`
	StoreId          string          `json:"storeId"`
	RecordedBy       string          `json:"recordedBy"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// TransactionLedger persists bills. Save must reject a duplicate invoice id.
// List returns bills ordered by creation time, newest first.
type TransactionLedger interface {
	Save(ctx context.Context, transaction Transaction) error
	Get(ctx context.Context, id string) (Transaction, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Transaction, error)
}
