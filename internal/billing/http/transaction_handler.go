package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/application"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
)

const (
	TransactionIdKey = "id"

	// OperatorHeader carries the identity of the operator recording the
	// bill. Authentication itself lives outside this service.
	OperatorHeader = "X-Operator-Name"
)

type TransactionCreator interface {
	CreateTransaction(ctx context.Context, input application.CreateTransactionInput) (application.CreateTransactionResult, error)
}

type TransactionDeleter interface {
	DeleteTransaction(ctx context.Context, id string) error
}

type TransactionLister interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type lineItemBody struct {
	ProductId   string          `json:"productId" binding:"required"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Type        string          `json:"type" binding:"required,oneof=sold bought"`
}

type createTransactionRequestBody struct {
	CustomerName  string         `json:"customerName" binding:"required"`
	CustomerPhone string         `json:"customerPhone"`
	Items         []lineItemBody `json:"items" binding:"required"`
	PaymentMethod string         `json:"paymentMethod"`
	PaymentStatus string         `json:"paymentStatus" binding:"omitempty,oneof=paid pending partial"`
	InvoiceId     string         `json:"invoiceId"`
	StoreId       string         `json:"storeId"`
}

type createTransactionResponseBody struct {
	Transaction     domain.Transaction `json:"transaction"`
	SkippedProducts []string           `json:"skippedProducts,omitempty"`
}

type TransactionHandler struct {
	creator TransactionCreator
	deleter TransactionDeleter
	lister  TransactionLister
}

func NewTransactionHandler(creator TransactionCreator, deleter TransactionDeleter, lister TransactionLister) *TransactionHandler {
	return &TransactionHandler{
		creator: creator,
		deleter: deleter,
		lister:  lister,
	}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var body createTransactionRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	items := make([]domain.LineItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, domain.LineItemInput{
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Type:        domain.ItemType(item.Type),
		})
	}

	result, err := h.creator.CreateTransaction(c.Request.Context(), application.CreateTransactionInput{
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		Items:         items,
		PaymentMethod: body.PaymentMethod,
		PaymentStatus: domain.PaymentStatus(body.PaymentStatus),
		InvoiceId:     body.InvoiceId,
		StoreId:       body.StoreId,
		RecordedBy:    c.GetHeader(OperatorHeader),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createTransactionResponseBody{
		Transaction:     result.Transaction,
		SkippedProducts: result.SkippedProducts,
	})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	err := h.deleter.DeleteTransaction(c.Request.Context(), c.Param(TransactionIdKey))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.lister.ListTransactions(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
