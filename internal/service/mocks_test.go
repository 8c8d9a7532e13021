package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/shopsense/internal/model"
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

// MockOrderStore mocks the OrderStore interface
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderStore) GetGlobalOrderCounts(ctx context.Context) (map[uuid.UUID]int, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

// MockProfileBuilder mocks the ProfileBuilder interface
type MockProfileBuilder struct {
	mock.Mock
}

func (m *MockProfileBuilder) Build(ctx context.Context, userID uuid.UUID) (model.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.UserProfile), args.Error(1)
}
