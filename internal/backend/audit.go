package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// defaultAuditLimit bounds unfiltered audit queries.
const defaultAuditLimit = 100

// AuditLogs fetches the tenant audit trail with optional filters. The
// sentinel values "all" and "Todos" mean no filter, matching the console
// selects.
func (c *Client) AuditLogs(ctx context.Context, token string, filters domain.AuditFilters) ([]domain.AuditLog, error) {
	params := url.Values{}
	if filters.UserID != "" && filters.UserID != "all" {
		params.Set("user_id", filters.UserID)
	}
	if filters.Action != "" && filters.Action != "Todos" {
		params.Set("action", filters.Action)
	}
	if filters.StartDate != "" {
		params.Set("start_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		params.Set("end_date", filters.EndDate)
	}
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	params.Set("limit", strconv.Itoa(limit))

	var out []domain.AuditLog
	if err := c.get(ctx, token, "/audit", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}
