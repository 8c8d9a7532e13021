package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/shopsense/internal/model"
	"github.com/dtroode/shopsense/internal/testutil"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

// MockProductStore mocks the ProductStore interface
type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductStore) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductStore) Search(ctx context.Context, text string) ([]model.Product, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]model.Product), args.Error(1)
}

func setupCatalog(t *testing.T) (*gin.Engine, *MockUserStore, *MockProductStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	h := NewCatalog(userStore, productStore, testutil.MakeNoopLogger())

	engine := gin.New()
	engine.GET("/api/users/:id", h.GetUser)
	engine.GET("/api/products/:id", h.GetProduct)

	return engine, userStore, productStore
}

func TestCatalog_GetUser(t *testing.T) {
	engine, userStore, _ := setupCatalog(t)

	user := model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		CreatedAt: time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC),
		IsActive:  true,
	}
	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	w := doRequest(engine, "/api/users/"+user.ID.String())

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, "2023-01-02T03:04:05Z", resp["created_at"])
	assert.Equal(t, true, resp["is_active"])
}

func TestCatalog_GetUser_NotFound(t *testing.T) {
	engine, userStore, _ := setupCatalog(t)

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	w := doRequest(engine, "/api/users/"+userID.String())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalog_GetProduct(t *testing.T) {
	engine, _, productStore := setupCatalog(t)

	product := model.Product{
		ID:            uuid.New(),
		Name:          "novel",
		Category:      "Books",
		Price:         12.5,
		StockQuantity: 3,
	}
	productStore.On("GetByID", mock.Anything, product.ID).Return(product, nil)

	w := doRequest(engine, "/api/products/"+product.ID.String())

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "novel", resp["name"])
	assert.Equal(t, "Books", resp["category"])
	assert.Equal(t, 12.5, resp["price"])
}

func TestCatalog_GetProduct_InvalidID(t *testing.T) {
	engine, _, _ := setupCatalog(t)

	w := doRequest(engine, "/api/products/42")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
