package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// Notifications lists the authenticated user's notifications, newest
// first.
func (c *Client) Notifications(ctx context.Context, token string) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := c.get(ctx, token, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPatch, token, fmt.Sprintf("/notifications/%d/read", id), nil, nil, "", nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.post(ctx, token, "/notifications/mark-all-read", nil, nil)
}

// SendNotification broadcasts a system notification; super-admin only,
// enforced server-side.
func (c *Client) SendNotification(ctx context.Context, token string, n domain.SystemNotification) error {
	return c.postJSON(ctx, token, "/notifications/send", n, nil)
}
