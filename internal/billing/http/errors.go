package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

func handleDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, &domain.ValidationError{}):
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.TransactionNotFoundError{}),
		errors.Is(err, &domain.ProductNotFoundError{}),
		errors.Is(err, &domain.StoreNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"errors": err.Error()})
	case errors.Is(err, &domain.ConflictError{}):
		c.JSON(http.StatusConflict, gin.H{"errors": "concurrent stock update, retry the request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"errors": "internal server error"})
	}
}
