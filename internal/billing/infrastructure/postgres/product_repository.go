package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/murugannagaraja781/billingsoftware/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	db database.QueryExecuter
}

func NewProductRepository(db database.QueryExecuter) *ProductRepository {
	return &ProductRepository{db: db}
}

const selectProductSQL = `
	SELECT id, name, category, price::text, buy_price::text, description, unit, stock::text, created_at, updated_at
	FROM products`

func (pr *ProductRepository) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	getProductSQL := selectProductSQL + ` WHERE id = $1`

	product, err := scanProduct(pr.db.QueryRow(ctx, getProductSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", id)}
		}

		return domain.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

func (pr *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	listProductsSQL := selectProductSQL + ` ORDER BY name`

	rows, err := pr.db.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (pr *ProductRepository) CreateProduct(ctx context.Context, product domain.Product) error {
	insertProductSQL := `
		INSERT INTO products (id, name, category, price, buy_price, description, unit, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := pr.db.Exec(ctx, insertProductSQL,
		product.Id,
		product.Name,
		string(product.Category),
		product.Price.String(),
		product.BuyPrice.String(),
		product.Description,
		product.Unit,
		product.Stock.String(),
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// UpdateProduct rewrites the catalog fields of a product, stock included.
// Bill-driven stock changes never come through here; they go through the
// CatalogStore so they serialize per product.
func (pr *ProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	updateProductSQL := `
		UPDATE products
		SET name = $1, category = $2, price = $3, buy_price = $4,
		    description = $5, unit = $6, stock = $7, updated_at = now()
		WHERE id = $8`

	tag, err := pr.db.Exec(ctx, updateProductSQL,
		product.Name,
		string(product.Category),
		product.Price.String(),
		product.BuyPrice.String(),
		product.Description,
		product.Unit,
		product.Stock.String(),
		product.Id,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product %s not found", product.Id)}
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		product  domain.Product
		category string
		price    string
		buyPrice string
		stock    string
	)

	err := row.Scan(
		&product.Id, &product.Name, &category, &price, &buyPrice,
		&product.Description, &product.Unit, &stock, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, err
	}

	product.Category = domain.ProductCategory(category)

	if product.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Product{}, err
	}
	if product.BuyPrice, err = decimal.NewFromString(buyPrice); err != nil {
		return domain.Product{}, err
	}
	if product.Stock, err = decimal.NewFromString(stock); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}
