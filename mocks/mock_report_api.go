package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockReportAPI is a mock implementation of backend.ReportAPI.
type MockReportAPI struct {
	mock.Mock
}

func (m *MockReportAPI) DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportAPI) BIAnalysis(ctx context.Context, token, query, docType string) (*domain.BIReport, error) {
	args := m.Called(ctx, token, query, docType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BIReport), args.Error(1)
}
