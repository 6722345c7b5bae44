package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/application"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
	"github.com/shopspring/decimal"
)

const ProductIdKey = "id"

type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, input application.CreateProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input application.CreateProductInput) (domain.Product, error)
}

type productRequestBody struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=new waste"`
	Price       decimal.Decimal `json:"price"`
	BuyPrice    decimal.Decimal `json:"buyPrice"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Stock       decimal.Decimal `json:"stock"`
}

type ProductHandler struct {
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	input, ok := bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	input, ok := bindProductInput(c)
	if !ok {
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param(ProductIdKey), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func bindProductInput(c *gin.Context) (application.CreateProductInput, bool) {
	var body productRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return application.CreateProductInput{}, false
	}

	return application.CreateProductInput{
		Name:        body.Name,
		Category:    domain.ProductCategory(body.Category),
		Price:       body.Price,
		BuyPrice:    body.BuyPrice,
		Description: body.Description,
		Unit:        body.Unit,
		Stock:       body.Stock,
	}, true
}
