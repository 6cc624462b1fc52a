package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockPublicAPI is a mock implementation of backend.PublicAPI.
type MockPublicAPI struct {
	mock.Mock
}

func (m *MockPublicAPI) PublicDocument(ctx context.Context, shareToken string) (*domain.PublicDocument, error) {
	args := m.Called(ctx, shareToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PublicDocument), args.Error(1)
}
