package backend

import (
	"context"
	"fmt"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// CreateTenantInput provisions a new municipality. The backend generates
// the initial admin credentials and returns them once.
type CreateTenantInput struct {
	Name      string  `json:"name" binding:"required"`
	CNPJ      string  `json:"cnpj" binding:"required"`
	PlanType  string  `json:"plan_type" binding:"required"`
	PlanValue float64 `json:"plan_value"`
}

// ListTenants returns every tenant. Super-admin only, enforced server-side.
func (c *Client) ListTenants(ctx context.Context, token string) ([]domain.Tenant, error) {
	var out []domain.Tenant
	if err := c.get(ctx, token, "/admin/tenants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTenantDetails returns the drill-down view of one tenant.
func (c *Client) GetTenantDetails(ctx context.Context, token string, id int64) (*domain.TenantDetails, error) {
	var out domain.TenantDetails
	if err := c.get(ctx, token, fmt.Sprintf("/admin/tenants/%d/details", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTenant provisions a tenant and returns its generated credentials.
func (c *Client) CreateTenant(ctx context.Context, token string, input CreateTenantInput) (*domain.CreateTenantResult, error) {
	var out domain.CreateTenantResult
	if err := c.postJSON(ctx, token, "/admin/tenants", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTenantStatus activates or suspends a tenant.
func (c *Client) UpdateTenantStatus(ctx context.Context, token string, id int64, isActive bool) error {
	body := map[string]bool{"is_active": isActive}
	return c.patchJSON(ctx, token, fmt.Sprintf("/admin/tenants/%d", id), body, nil)
}

// RenewTenant extends a tenant's subscription by one billing period.
func (c *Client) RenewTenant(ctx context.Context, token string, id int64) error {
	body := map[string]bool{"renew_subscription": true}
	return c.patchJSON(ctx, token, fmt.Sprintf("/admin/tenants/%d", id), body, nil)
}

// DeleteTenant removes a tenant and everything under it.
func (c *Client) DeleteTenant(ctx context.Context, token string, id int64) error {
	return c.del(ctx, token, fmt.Sprintf("/admin/tenants/%d", id), nil)
}

// RunBillingCycle triggers the billing run manually.
func (c *Client) RunBillingCycle(ctx context.Context, token string) error {
	return c.post(ctx, token, "/admin/billing/run", nil, nil)
}
