package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

type StoreService interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	CreateStore(ctx context.Context, name, location string) (domain.Store, error)
}

type storeRequestBody struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

type StoreHandler struct {
	service StoreService
}

func NewStoreHandler(service StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.service.ListStores(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, stores)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var body storeRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": "invalid request body"})
		return
	}

	store, err := h.service.CreateStore(c.Request.Context(), body.Name, body.Location)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, store)
}
