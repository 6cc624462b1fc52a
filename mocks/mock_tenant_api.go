package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockTenantAPI is a mock implementation of backend.TenantAPI.
type MockTenantAPI struct {
	mock.Mock
}

func (m *MockTenantAPI) ListTenants(ctx context.Context, token string) ([]domain.Tenant, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantAPI) GetTenantDetails(ctx context.Context, token string, id int64) (*domain.TenantDetails, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantDetails), args.Error(1)
}

func (m *MockTenantAPI) CreateTenant(ctx context.Context, token string, input backend.CreateTenantInput) (*domain.CreateTenantResult, error) {
	args := m.Called(ctx, token, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreateTenantResult), args.Error(1)
}

func (m *MockTenantAPI) UpdateTenantStatus(ctx context.Context, token string, id int64, isActive bool) error {
	args := m.Called(ctx, token, id, isActive)
	return args.Error(0)
}

func (m *MockTenantAPI) RenewTenant(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockTenantAPI) DeleteTenant(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockTenantAPI) RunBillingCycle(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
