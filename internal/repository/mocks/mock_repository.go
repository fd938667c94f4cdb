package mocks

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRepository[E any, C any, U any] struct {
	mock.Mock
}

func (m *MockRepository[E, C, U]) Create(tx *gorm.DB, in C) (*E, error) {
	args := m.Called(tx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E, C, U]) ReadAll(tx *gorm.DB) ([]E, error) {
	args := m.Called(tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]E), args.Error(1)
}

func (m *MockRepository[E, C, U]) ReadOne(tx *gorm.DB, id int64) (*E, bool, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*E), args.Bool(1), args.Error(2)
}

func (m *MockRepository[E, C, U]) Update(tx *gorm.DB, id int64, in U) (*E, error) {
	args := m.Called(tx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*E), args.Error(1)
}

func (m *MockRepository[E, C, U]) Delete(tx *gorm.DB, id int64) error {
	args := m.Called(tx, id)
	return args.Error(0)
}
