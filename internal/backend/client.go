// Package backend is the typed client for the IntelliDocs REST API. The
// gateway owns no data of its own: every screen is rendered from these
// calls, and authorization is enforced by the backend on each one.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client calls the IntelliDocs API at a fixed base URL. Authenticated
// calls attach "Authorization: Bearer <token>" when a token is supplied
// and omit the header otherwise; the backend answers 401 where one is
// required.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a client. The timeout bounds every request so a backend
// that never answers cannot wedge a console request forever.
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "backend").Logger(),
	}
}

// BaseURL returns the configured API origin, used to absolutize the
// relative preview and page-image URLs the backend returns.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, token, path, query, nil, "", out)
}

// postJSON issues an authenticated POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, token, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encoding %s body: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, token, path, nil, bytes.NewReader(payload), "application/json", out)
}

// patchJSON issues an authenticated PATCH with a JSON body.
func (c *Client) patchJSON(ctx context.Context, token, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encoding %s body: %w", path, err)
	}
	return c.do(ctx, http.MethodPatch, token, path, nil, bytes.NewReader(payload), "application/json", out)
}

// postForm issues a POST with a form-encoded body, as the login endpoint
// requires.
func (c *Client) postForm(ctx context.Context, token, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, token, path, nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// post issues an authenticated POST with no body.
func (c *Client) post(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodPost, token, path, query, nil, "", out)
}

// del issues an authenticated DELETE.
func (c *Client) del(ctx context.Context, token, path string, out any) error {
	return c.do(ctx, http.MethodDelete, token, path, nil, nil, "", out)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body io.Reader, contentType string, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("backend: building %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decoding %s %s response: %w", method, path, err)
	}
	return nil
}
