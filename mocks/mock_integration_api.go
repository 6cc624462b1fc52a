package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockIntegrationAPI is a mock implementation of backend.IntegrationAPI.
type MockIntegrationAPI struct {
	mock.Mock
}

func (m *MockIntegrationAPI) ListIntegrationKeys(ctx context.Context, token string) ([]domain.IntegrationKey, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntegrationKey), args.Error(1)
}

func (m *MockIntegrationAPI) CreateIntegrationKey(ctx context.Context, token, name string) (*domain.IntegrationKey, error) {
	args := m.Called(ctx, token, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IntegrationKey), args.Error(1)
}

func (m *MockIntegrationAPI) RevokeIntegrationKey(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}
