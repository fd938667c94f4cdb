package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sandwichapi/internal/model"
)

type MockCatalogService[E any, C any, U any] struct {
	mock.Mock
}

type (
	MockResourceService = MockCatalogService[model.Resource, model.ResourceCreate, model.ResourceUpdate]
	MockSandwichService = MockCatalogService[model.Sandwich, model.SandwichCreate, model.SandwichUpdate]
)

func (m *MockCatalogService[E, C, U]) Create(ctx context.Context, in C) (*E, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockCatalogService[E, C, U]) ReadAll(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockCatalogService[E, C, U]) ReadOne(ctx context.Context, id int64) (*E, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*E), args.Bool(1), args.Error(2)
}

func (m *MockCatalogService[E, C, U]) Update(ctx context.Context, id int64, in U) (*E, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockCatalogService[E, C, U]) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
