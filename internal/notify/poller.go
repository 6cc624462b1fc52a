// Package notify gates notification-bell reads behind a fixed refresh
// interval. The console bell re-fetches on a timer rather than via push;
// the gate keeps that semantic while making sure repeated reads from one
// session collapse into a single backend fetch per interval instead of
// fanning out into unbounded concurrent requests.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/backend"
	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// Poller caches each session's notifications for one poll interval.
type Poller struct {
	api      backend.NotificationAPI
	interval time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu            sync.Mutex
	notifications []domain.Notification
	fetchedAt     time.Time
}

// NewPoller creates a gate refreshing at most once per interval and
// session.
func NewPoller(api backend.NotificationAPI, interval time.Duration) *Poller {
	return &Poller{
		api:      api,
		interval: interval,
		now:      time.Now,
		entries:  make(map[string]*entry),
	}
}

// Get returns the session's notifications, fetching from the backend only
// when the cached copy is older than the poll interval. Concurrent
// callers for the same session serialize on the entry, so at most one
// fetch is in flight per session.
func (p *Poller) Get(ctx context.Context, sessionID, token string) ([]domain.Notification, error) {
	p.mu.Lock()
	e, ok := p.entries[sessionID]
	if !ok {
		e = &entry{}
		p.entries[sessionID] = e
	}
	p.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.fetchedAt.IsZero() && p.now().Sub(e.fetchedAt) < p.interval {
		return append([]domain.Notification(nil), e.notifications...), nil
	}

	notifications, err := p.api.Notifications(ctx, token)
	if err != nil {
		return nil, err
	}
	e.notifications = notifications
	e.fetchedAt = p.now()
	return append([]domain.Notification(nil), notifications...), nil
}

// Invalidate drops the cached copy so the next read refetches, used after
// a mark-read mutation.
func (p *Poller) Invalidate(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, sessionID)
}

// Forget is Invalidate for a session that no longer exists (logout).
func (p *Poller) Forget(sessionID string) {
	p.Invalidate(sessionID)
}
