package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/logging"
)

type CreateTransactionInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []domain.LineItemInput
	PaymentMethod string
	PaymentStatus domain.PaymentStatus
	InvoiceId     string
	StoreId       string
	RecordedBy    string
}

type CreateTransactionResult struct {
	Transaction domain.Transaction

	// SkippedProducts lists line items whose product no longer exists in
	// the catalog. The bill is still persisted; the caller gets this as a
	// partial-success warning.
	SkippedProducts []string
}

// CreateTransactionCase records a bill: price the items, move stock, persist
// the record, announce it. Stock moves before persistence; if persistence
// fails the already-applied deltas are compensated with their exact inverse,
// so no other reader ever sees a bill's stock effect without the bill.
type CreateTransactionCase struct {
	applier   domain.StockApplier
	ledger    domain.TransactionLedger
	publisher domain.EventPublisher
	logger    logging.Logger

	now   func() time.Time
	newId func() string
}

func NewCreateTransactionCase(
	applier domain.StockApplier,
	ledger domain.TransactionLedger,
	publisher domain.EventPublisher,
	logger logging.Logger,
) *CreateTransactionCase {
	return &CreateTransactionCase{
		applier:   applier,
		ledger:    ledger,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		newId:     uuid.NewString,
	}
}

func (c *CreateTransactionCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (CreateTransactionResult, error) {
	if input.CustomerName == "" {
		return CreateTransactionResult{}, &domain.ValidationError{Msg: "customer name is required"}
	}
	if len(input.Items) == 0 {
		return CreateTransactionResult{}, &domain.ValidationError{Msg: "at least one line item is required"}
	}

	priced, err := domain.PriceItems(input.Items)
	if err != nil {
		return CreateTransactionResult{}, err
	}

	adjustment, err := c.applier.Apply(ctx, priced.Items)
	if err != nil {
		return CreateTransactionResult{}, err
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusPaid
	}

	transaction := domain.Transaction{
		Id:               c.newId(),
		CustomerName:     input.CustomerName,
		CustomerPhone:    input.CustomerPhone,
		Items:            priced.Items,
		TotalNewAmount:   priced.TotalNew,
		TotalWasteAmount: priced.TotalWaste,
		NetAmount:        priced.Net,
		PaymentStatus:    paymentStatus,
		PaymentMethod:    paymentMethod,
		InvoiceId:        input.InvoiceId,
		StoreId:          input.StoreId,
		RecordedBy:       input.RecordedBy,
		CreatedAt:        c.now(),
	}

	if err := c.ledger.Save(ctx, transaction); err != nil {
		return CreateTransactionResult{}, c.compensate(ctx, adjustment.Applied, err)
	}

	// Best effort: the bill is final once persisted, nothing past this
	// point may fail the operation.
	c.publisher.Publish(domain.BillCreatedEvent{
		Kind:          domain.BillCreatedKind,
		OperatorName:  transaction.RecordedBy,
		CustomerName:  transaction.CustomerName,
		NetAmount:     transaction.NetAmount,
		TransactionId: transaction.Id,
		Timestamp:     transaction.CreatedAt,
	})

	return CreateTransactionResult{
		Transaction:     transaction,
		SkippedProducts: adjustment.SkippedProducts,
	}, nil
}

func (c *CreateTransactionCase) compensate(ctx context.Context, applied []domain.AppliedAdjustment, saveErr error) error {
	rbErr := c.applier.Rollback(ctx, applied)
	if rbErr == nil {
		return saveErr
	}

	var compErr *domain.CompensationError
	if errors.As(rbErr, &compErr) {
		for _, adj := range compErr.Adjustments {
			c.logger.Error("stock adjustment left dangling, manual reconciliation needed",
				"product", adj.ProductId, "delta", adj.Delta.String(), "cause", saveErr)
		}
	} else {
		c.logger.Error("stock rollback failed", "error", rbErr, "cause", saveErr)
	}

	return rbErr
}
