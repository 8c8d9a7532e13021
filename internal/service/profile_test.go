package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/shopsense/internal/model"
	"github.com/dtroode/shopsense/internal/testutil"
)

var baseTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func makeOrder(userID, productID uuid.UUID, total float64, at time.Time, status model.OrderStatus) model.Order {
	return model.Order{
		ID:         uuid.New(),
		UserID:     userID,
		ProductID:  productID,
		Quantity:   1,
		TotalPrice: total,
		OrderDate:  at,
		Status:     status,
	}
}

func TestProfile_Build_UserNotFound(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
	_, err := s.Build(context.Background(), userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestProfile_Build_NoOrders(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	user := model.User{ID: uuid.New(), Username: "fresh"}
	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	orderStore.On("GetByUserID", mock.Anything, user.ID).Return([]model.Order{}, nil)
	productStore.On("GetAll", mock.Anything).Return([]model.Product{}, nil)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
	profile, err := s.Build(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, model.SegmentNew, profile.Segment)
	assert.Zero(t, profile.TotalOrders)
	assert.Zero(t, profile.TotalSpend)
	assert.Zero(t, profile.AvgOrderValue)
	assert.Empty(t, profile.FavoriteCategories)
	assert.Equal(t, user, profile.User)
}

func TestProfile_Build_Segmentation(t *testing.T) {
	tests := []struct {
		name   string
		totals []float64
		want   model.Segment
	}{
		{
			name:   "spend exactly 1000 is VIP",
			totals: []float64{1000},
			want:   model.SegmentVIP,
		},
		{
			name:   "spend above 1000 is VIP",
			totals: []float64{600, 600},
			want:   model.SegmentVIP,
		},
		{
			name:   "spend 999.99 with three orders is Regular",
			totals: []float64{333.33, 333.33, 333.33},
			want:   model.SegmentRegular,
		},
		{
			name:   "spend 999.99 with two orders is Occasional",
			totals: []float64{500, 499.99},
			want:   model.SegmentOccasional,
		},
		{
			name:   "small spend with three orders is Occasional",
			totals: []float64{10, 10, 10},
			want:   model.SegmentOccasional,
		},
		{
			name:   "single order is Occasional",
			totals: []float64{5},
			want:   model.SegmentOccasional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStore := &MockUserStore{}
			productStore := &MockProductStore{}
			orderStore := &MockOrderStore{}

			user := model.User{ID: uuid.New()}
			product := model.Product{ID: uuid.New(), Category: "Books"}

			orders := make([]model.Order, 0, len(tt.totals))
			for i, total := range tt.totals {
				orders = append(orders, makeOrder(user.ID, product.ID, total, baseTime.Add(time.Duration(i)*time.Hour), model.OrderStatusDelivered))
			}

			userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
			orderStore.On("GetByUserID", mock.Anything, user.ID).Return(orders, nil)
			productStore.On("GetAll", mock.Anything).Return([]model.Product{product}, nil)

			s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
			profile, err := s.Build(context.Background(), user.ID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.Segment)
		})
	}
}

func TestProfile_Build_CancelledOrdersExcluded(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	user := model.User{ID: uuid.New()}
	product := model.Product{ID: uuid.New(), Category: "Electronics"}

	orders := []model.Order{
		makeOrder(user.ID, product.ID, 50, baseTime, model.OrderStatusDelivered),
		makeOrder(user.ID, product.ID, 2000, baseTime.Add(time.Hour), model.OrderStatusCancelled),
	}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	orderStore.On("GetByUserID", mock.Anything, user.ID).Return(orders, nil)
	productStore.On("GetAll", mock.Anything).Return([]model.Product{product}, nil)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
	profile, err := s.Build(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalOrders)
	assert.Equal(t, 50.0, profile.TotalSpend)
	assert.Equal(t, 50.0, profile.AvgOrderValue)
	assert.Equal(t, model.SegmentOccasional, profile.Segment)
}

func TestProfile_Build_AllOrdersCancelled(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	user := model.User{ID: uuid.New()}
	product := model.Product{ID: uuid.New(), Category: "Toys"}

	orders := []model.Order{
		makeOrder(user.ID, product.ID, 100, baseTime, model.OrderStatusCancelled),
		makeOrder(user.ID, product.ID, 200, baseTime.Add(time.Hour), model.OrderStatusCancelled),
	}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	orderStore.On("GetByUserID", mock.Anything, user.ID).Return(orders, nil)
	productStore.On("GetAll", mock.Anything).Return([]model.Product{product}, nil)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
	profile, err := s.Build(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, model.SegmentNew, profile.Segment)
	assert.Zero(t, profile.TotalOrders)
	assert.Empty(t, profile.FavoriteCategories)
}

func TestProfile_Build_FavoriteCategories(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	user := model.User{ID: uuid.New()}
	books := model.Product{ID: uuid.New(), Category: "Books"}
	toys := model.Product{ID: uuid.New(), Category: "Toys"}
	sports := model.Product{ID: uuid.New(), Category: "Sports"}
	garden := model.Product{ID: uuid.New(), Category: "Garden"}

	// Books x3; Toys and Sports x2 each, Toys bought more recently;
	// Garden x1 must fall off the top-3.
	orders := []model.Order{
		makeOrder(user.ID, books.ID, 10, baseTime, model.OrderStatusDelivered),
		makeOrder(user.ID, books.ID, 10, baseTime.Add(1*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, books.ID, 10, baseTime.Add(2*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, sports.ID, 10, baseTime.Add(3*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, sports.ID, 10, baseTime.Add(4*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, toys.ID, 10, baseTime.Add(5*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, toys.ID, 10, baseTime.Add(6*time.Hour), model.OrderStatusDelivered),
		makeOrder(user.ID, garden.ID, 10, baseTime.Add(7*time.Hour), model.OrderStatusDelivered),
	}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	orderStore.On("GetByUserID", mock.Anything, user.ID).Return(orders, nil)
	productStore.On("GetAll", mock.Anything).Return([]model.Product{books, toys, sports, garden}, nil)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())
	profile, err := s.Build(context.Background(), user.ID)

	require.NoError(t, err)
	require.Len(t, profile.FavoriteCategories, 3)
	assert.Equal(t, model.CategoryStat{Category: "Books", Frequency: 3}, profile.FavoriteCategories[0])
	assert.Equal(t, model.CategoryStat{Category: "Toys", Frequency: 2}, profile.FavoriteCategories[1])
	assert.Equal(t, model.CategoryStat{Category: "Sports", Frequency: 2}, profile.FavoriteCategories[2])
}

func TestProfile_Build_Idempotent(t *testing.T) {
	userStore := &MockUserStore{}
	productStore := &MockProductStore{}
	orderStore := &MockOrderStore{}

	user := model.User{ID: uuid.New()}
	product := model.Product{ID: uuid.New(), Category: "Books"}
	orders := []model.Order{
		makeOrder(user.ID, product.ID, 120, baseTime, model.OrderStatusDelivered),
	}

	userStore.On("GetByID", mock.Anything, user.ID).Return(user, nil)
	orderStore.On("GetByUserID", mock.Anything, user.ID).Return(orders, nil)
	productStore.On("GetAll", mock.Anything).Return([]model.Product{product}, nil)

	s := NewProfile(userStore, productStore, orderStore, testutil.MakeNoopLogger())

	first, err := s.Build(context.Background(), user.ID)
	require.NoError(t, err)
	second, err := s.Build(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
