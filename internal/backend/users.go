package backend

import (
	"context"
	"fmt"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// CreateUserInput adds a team member to the logged-in tenant. Gestores
// may only create users inside their own department; the backend
// enforces that scoping.
type CreateUserInput struct {
	FullName   string      `json:"full_name" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=8"`
	Role       domain.Role `json:"role" binding:"required"`
	Department string      `json:"department"`
}

// ListUsers returns the team of the logged-in tenant.
func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	var out []domain.User
	if err := c.get(ctx, token, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser adds a user to the logged-in tenant.
func (c *Client) CreateUser(ctx context.Context, token string, input CreateUserInput) error {
	return c.postJSON(ctx, token, "/users", input, nil)
}

// DeleteUser removes a user from the logged-in tenant.
func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.del(ctx, token, fmt.Sprintf("/users/%d", id), nil)
}
