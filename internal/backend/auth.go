package backend

import (
	"context"
	"net/url"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// LoginResult is the backend's answer to a successful login. The username
// field accepts an email or a CNPJ; the backend decides which it is.
type LoginResult struct {
	AccessToken        string      `json:"access_token"`
	Role               domain.Role `json:"role"`
	UserName           string      `json:"user_name"`
	MustChangePassword bool        `json:"must_change_password"`
}

// VerifyCodeResult carries the short-lived token that authorizes the
// final password reset step.
type VerifyCodeResult struct {
	ResetToken string `json:"reset_token"`
}

// Login authenticates against POST /auth/login. The endpoint is
// form-encoded, unlike the rest of the API.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var out LoginResult
	if err := c.postForm(ctx, "", "/auth/login", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword sets a new password for the authenticated user.
func (c *Client) ChangePassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.postJSON(ctx, token, "/auth/change-password", body, nil)
}

// ForgotPassword requests a reset code for the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.postJSON(ctx, "", "/auth/forgot-password", body, nil)
}

// VerifyResetCode exchanges an emailed code for a reset token.
func (c *Client) VerifyResetCode(ctx context.Context, email, code string) (*VerifyCodeResult, error) {
	body := map[string]string{"email": email, "code": code}
	var out VerifyCodeResult
	if err := c.postJSON(ctx, "", "/auth/verify-code", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfirmPasswordReset completes the reset flow with the verified token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"reset_token": resetToken, "new_password": newPassword}
	return c.postJSON(ctx, "", "/auth/reset-password-confirm", body, nil)
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context, token string) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.get(ctx, token, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
