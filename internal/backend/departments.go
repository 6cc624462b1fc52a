package backend

import (
	"context"
	"fmt"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// CreateDepartmentInput creates a department and its manager account in
// one step.
type CreateDepartmentInput struct {
	Name            string `json:"name" binding:"required"`
	ResponsibleName string `json:"responsible_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
}

// ListDepartments returns the departments of the logged-in tenant.
func (c *Client) ListDepartments(ctx context.Context, token string) ([]domain.Department, error) {
	var out []domain.Department
	if err := c.get(ctx, token, "/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDepartmentDetails returns the drill-down view of one department.
func (c *Client) GetDepartmentDetails(ctx context.Context, token string, id int64) (*domain.DepartmentDetails, error) {
	var out domain.DepartmentDetails
	if err := c.get(ctx, token, fmt.Sprintf("/departments/%d/details", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateDepartment creates a department with its manager.
func (c *Client) CreateDepartment(ctx context.Context, token string, input CreateDepartmentInput) error {
	return c.postJSON(ctx, token, "/departments", input, nil)
}

// DeleteDepartment removes a department.
func (c *Client) DeleteDepartment(ctx context.Context, token string, id int64) error {
	return c.del(ctx, token, fmt.Sprintf("/departments/%d", id), nil)
}
