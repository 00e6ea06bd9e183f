package queries_test

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCartRepository) RemoveStale(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type MockCatalogProvider struct{ mock.Mock }

func (m *MockCatalogProvider) Products(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockCatalogProvider) ProductByID(ctx context.Context, id string) (catalog.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Product), args.Error(1)
}

func (m *MockCatalogProvider) Artists(ctx context.Context) ([]catalog.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Artist), args.Error(1)
}
