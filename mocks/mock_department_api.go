package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockDepartmentAPI is a mock implementation of backend.DepartmentAPI.
type MockDepartmentAPI struct {
	mock.Mock
}

func (m *MockDepartmentAPI) ListDepartments(ctx context.Context, token string) ([]domain.Department, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentAPI) GetDepartmentDetails(ctx context.Context, token string, id int64) (*domain.DepartmentDetails, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentDetails), args.Error(1)
}

func (m *MockDepartmentAPI) CreateDepartment(ctx context.Context, token string, input backend.CreateDepartmentInput) error {
	args := m.Called(ctx, token, input)
	return args.Error(0)
}

func (m *MockDepartmentAPI) DeleteDepartment(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}
