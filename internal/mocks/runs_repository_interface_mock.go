// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/container-optimizer/internal/repository"
)

type MockRunsRepositoryInterface struct {
	mock.Mock
}

func NewMockRunsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRunsRepositoryInterface {
	m := &MockRunsRepositoryInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRunsRepositoryInterface) Create(ctx context.Context, run *repository.OptimizationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunsRepositoryInterface) List(ctx context.Context, opts repository.RunQueryOptions) ([]*repository.OptimizationRun, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.OptimizationRun), args.Error(1)
}

func (m *MockRunsRepositoryInterface) Count(ctx context.Context, opts repository.RunQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
