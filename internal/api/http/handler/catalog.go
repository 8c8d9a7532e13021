package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/shopsense/internal/logger"
	"github.com/dtroode/shopsense/internal/model"
)

// Catalog handles plain lookup endpoints for users and products.
type Catalog struct {
	userStore    model.UserStore
	productStore model.ProductStore
	logger       *logger.Logger
}

// NewCatalog creates a new Catalog handler.
func NewCatalog(userStore model.UserStore, productStore model.ProductStore, logger *logger.Logger) *Catalog {
	return &Catalog{
		userStore:    userStore,
		productStore: productStore,
		logger:       logger,
	}
}

// GetUser handles GET /api/users/:id.
func (h *Catalog) GetUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// GetProduct handles GET /api/products/:id.
func (h *Catalog) GetProduct(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	product, err := h.productStore.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}
