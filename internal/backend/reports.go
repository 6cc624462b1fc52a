package backend

import (
	"context"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// DashboardStats fetches the home dashboard aggregates. The backend
// scopes them to the caller's department view.
func (c *Client) DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.get(ctx, token, "/reports/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BIAnalysis asks the backend to generate an AI business-intelligence
// report over the tenant's documents. An empty docType means all types.
func (c *Client) BIAnalysis(ctx context.Context, token, query, docType string) (*domain.BIReport, error) {
	body := map[string]string{"query": query}
	if docType != "" {
		body["doc_type"] = docType
	}
	var out domain.BIReport
	if err := c.postJSON(ctx, token, "/reports/bi-analysis", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
