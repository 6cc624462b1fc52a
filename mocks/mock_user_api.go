package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockUserAPI is a mock implementation of backend.UserAPI.
type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserAPI) CreateUser(ctx context.Context, token string, input backend.CreateUserInput) error {
	args := m.Called(ctx, token, input)
	return args.Error(0)
}

func (m *MockUserAPI) DeleteUser(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}
