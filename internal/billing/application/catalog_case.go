package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
)

type CreateProductInput struct {
	Name        string
	Category    domain.ProductCategory
	Price       decimal.Decimal
	BuyPrice    decimal.Decimal
	Description string
	Unit        string
	Stock       decimal.Decimal
}

// CatalogCase covers catalog management. Catalog writes set stock directly
// (physical counts, corrections); only bill create/delete goes through the
// stock applier.
type CatalogCase struct {
	products domain.ProductRepository

	now   func() time.Time
	newId func() string
}

func NewCatalogCase(products domain.ProductRepository) *CatalogCase {
	return &CatalogCase{
		products: products,
		now:      time.Now,
		newId:    uuid.NewString,
	}
}

func (c *CatalogCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return c.products.ListProducts(ctx)
}

func (c *CatalogCase) CreateProduct(ctx context.Context, input CreateProductInput) (domain.Product, error) {
	if err := validateProductInput(input.Name, input.Category); err != nil {
		return domain.Product{}, err
	}

	now := c.now()
	unit := input.Unit
	if unit == "" {
		unit = "kg"
	}

	product := domain.Product{
		Id:          c.newId(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		BuyPrice:    input.BuyPrice,
		Description: input.Description,
		Unit:        unit,
		Stock:       input.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.products.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (c *CatalogCase) UpdateProduct(ctx context.Context, id string, input CreateProductInput) (domain.Product, error) {
	if err := validateProductInput(input.Name, input.Category); err != nil {
		return domain.Product{}, err
	}

	product, err := c.products.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Price = input.Price
	product.BuyPrice = input.BuyPrice
	product.Description = input.Description
	if input.Unit != "" {
		product.Unit = input.Unit
	}
	product.Stock = input.Stock
	product.UpdatedAt = c.now()

	if err := c.products.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func validateProductInput(name string, category domain.ProductCategory) error {
	if name == "" {
		return &domain.ValidationError{Msg: "product name is required"}
	}
	if category != domain.CategoryNew && category != domain.CategoryWaste {
		return &domain.ValidationError{Msg: fmt.Sprintf("unknown product category %q", category)}
	}
	return nil
}
