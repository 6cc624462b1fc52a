package backend

import (
	"context"
	"fmt"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// ListIntegrationKeys lists the tenant's API keys. Secrets are not
// returned after issuance; only the prefix identifies each key.
func (c *Client) ListIntegrationKeys(ctx context.Context, token string) ([]domain.IntegrationKey, error) {
	var out []domain.IntegrationKey
	if err := c.get(ctx, token, "/integrations/keys", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateIntegrationKey issues a new API key; the full secret appears only
// in this response.
func (c *Client) CreateIntegrationKey(ctx context.Context, token, name string) (*domain.IntegrationKey, error) {
	body := map[string]string{"name": name}
	var out domain.IntegrationKey
	if err := c.postJSON(ctx, token, "/integrations/keys", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeIntegrationKey permanently disables an API key.
func (c *Client) RevokeIntegrationKey(ctx context.Context, token string, id int64) error {
	return c.del(ctx, token, fmt.Sprintf("/integrations/keys/%d", id), nil)
}
