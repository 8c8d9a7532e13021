package handler

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/model"
)

func handleError(c *gin.Context, err error) {
	var dataErr *model.DataAccessError

	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &dataErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "data access failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathUUID parses the named path parameter as a uuid, writing a 400 on
// failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// queryLimit parses the optional limit query parameter. Zero means "use
// the service default"; negative or malformed values are a 400.
func queryLimit(c *gin.Context) (int, bool) {
	var params struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return params.Limit, true
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	IsActive  bool   `json:"is_active"`
}

type productResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CreatedAt     string  `json:"created_at"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		IsActive:  u.IsActive,
	}
}

func toProductResponse(p model.Product) productResponse {
	return productResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

// roundCents rounds monetary values to two decimals at the API boundary.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
