package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockAuditAPI is a mock implementation of backend.AuditAPI.
type MockAuditAPI struct {
	mock.Mock
}

func (m *MockAuditAPI) AuditLogs(ctx context.Context, token string, filters domain.AuditFilters) ([]domain.AuditLog, error) {
	args := m.Called(ctx, token, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}
