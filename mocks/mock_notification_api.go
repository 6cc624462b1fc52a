package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockNotificationAPI is a mock implementation of backend.NotificationAPI.
type MockNotificationAPI struct {
	mock.Mock
}

func (m *MockNotificationAPI) Notifications(ctx context.Context, token string) ([]domain.Notification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationAPI) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockNotificationAPI) MarkAllNotificationsRead(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockNotificationAPI) SendNotification(ctx context.Context, token string, n domain.SystemNotification) error {
	args := m.Called(ctx, token, n)
	return args.Error(0)
}
