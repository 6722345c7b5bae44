package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryNew   ProductCategory = "new"
	CategoryWaste ProductCategory = "waste"
)

type Product struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       decimal.Decimal `json:"price"`
	BuyPrice    decimal.Decimal `json:"buyPrice"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Stock       decimal.Decimal `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CatalogStore is the stock side of the product catalog. AdjustStock must be
// safe under concurrent callers: adjustments to the same product serialize,
// adjustments to different products may run in parallel. Stock is allowed to
// go negative and must never be clamped.
type CatalogStore interface {
	GetStock(ctx context.Context, productId string) (decimal.Decimal, error)
	AdjustStock(ctx context.Context, productId string, delta decimal.Decimal) (decimal.Decimal, error)
}

type ProductRepository interface {
	GetProduct(ctx context.Context, id string) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, product Product) error
	UpdateProduct(ctx context.Context, product Product) error
}

type Store struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type StoreRepository interface {
	ListStores(ctx context.Context) ([]Store, error)
	CreateStore(ctx context.Context, store Store) error
}
