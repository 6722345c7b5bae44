package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const BillCreatedKind = "bill-created"

// BillCreatedEvent is broadcast after a bill is persisted. Delivery is
// best-effort: no acknowledgment, no guarantee, and never a reason to fail
// the transaction that produced it.
type BillCreatedEvent struct {
	Kind          string          `json:"kind"`
	OperatorName  string          `json:"operatorName"`
	CustomerName  string          `json:"customerName"`
	NetAmount     decimal.Decimal `json:"netAmount"`
	TransactionId string          `json:"transactionId"`
	Timestamp     time.Time       `json:"timestamp"`
}

type EventPublisher interface {
	Publish(event BillCreatedEvent)
}
