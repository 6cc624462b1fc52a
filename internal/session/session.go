// Package session owns the gateway's authentication state: the token,
// role, and user name the backend issued at login. It is the single
// read/write boundary for that state. Handlers receive a Session through
// the request context and never touch ambient storage.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// Session is the ephemeral record created on login and destroyed on
// logout or a forced clear after a backend 401. It caches what the
// backend issued; the browser only ever sees the signed session ID.
type Session struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	Role      domain.Role `json:"role"`
	UserName  string      `json:"user_name"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Expired reports whether the session has outlived its TTL.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions keyed by ID. Get returns
// domain.ErrSessionExpired for unknown or expired IDs; Delete of an
// unknown ID is a no-op.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// New creates a session for a successful login response.
func New(token string, role domain.Role, userName string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.New().String(),
		Token:     token,
		Role:      role,
		UserName:  userName,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
