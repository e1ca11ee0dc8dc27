package mocks

import (
	"context"

	"cart-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockSnapshotStore struct {
	mock.Mock
}

type MockCatalogRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockSnapshotStore) Save(ctx context.Context, items []domain.LineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockSnapshotStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockSnapshotStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogRepository) List() ([]domain.MenuItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockCatalogRepository) ListByCategory(category string) ([]domain.MenuItem, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockCatalogRepository) FindByID(id uint64) (*domain.MenuItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MenuItem), args.Error(1)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
