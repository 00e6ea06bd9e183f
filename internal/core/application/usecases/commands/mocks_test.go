package commands_test

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

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

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
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

type MockSettlementGateway struct{ mock.Mock }

func (m *MockSettlementGateway) Settle(
	ctx context.Context,
	items []*cart.LineItem,
	customer ports.Customer,
) (string, error) {
	args := m.Called(ctx, items, customer)
	return args.String(0), args.Error(1)
}
