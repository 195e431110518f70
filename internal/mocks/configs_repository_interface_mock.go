// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/repository"
)

type MockConfigsRepositoryInterface struct {
	mock.Mock
}

func NewMockConfigsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConfigsRepositoryInterface {
	m := &MockConfigsRepositoryInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockConfigsRepositoryInterface) GetActive(ctx context.Context) (*repository.ConfigPreset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConfigPreset), args.Error(1)
}

func (m *MockConfigsRepositoryInterface) Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*repository.ConfigPreset, error) {
	args := m.Called(ctx, name, cfg, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConfigPreset), args.Error(1)
}

func (m *MockConfigsRepositoryInterface) Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*repository.ConfigPreset, error) {
	args := m.Called(ctx, id, cfg, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ConfigPreset), args.Error(1)
}

func (m *MockConfigsRepositoryInterface) List(ctx context.Context, limit int) ([]repository.ConfigPreset, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ConfigPreset), args.Error(1)
}
