// Package session maps opaque bearer tokens to user identities for the
// lifetime of the process.
package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound indicates a token that was never issued, has been revoked, or
// has expired.
var ErrNotFound = errors.New("session not found")

// Registry is the token -> user mapping consumed by the auth service. It can
// later be backed by a durable or distributed store without touching callers.
type Registry interface {
	// Create mints a token for userID and records the mapping.
	Create(userID int64) (string, error)
	// Resolve returns the user id bound to token, or ErrNotFound.
	Resolve(token string) (int64, error)
	// Revoke removes the mapping. Revoking an unknown token is a no-op.
	Revoke(token string)
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryRegistry is an in-process Registry. Sessions live in a mutex-guarded
// map and are lost on restart. Safe for concurrent use.
type MemoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]entry

	ttl    time.Duration
	tokens TokenSource
	now    func() time.Time
}

// NewMemoryRegistry creates a registry whose sessions expire server-side
// after ttl. A ttl of zero disables expiry.
func NewMemoryRegistry(ttl time.Duration) *MemoryRegistry {
	return &MemoryRegistry{
		sessions: make(map[string]entry),
		ttl:      ttl,
		tokens:   RandomToken,
		now:      time.Now,
	}
}

func (r *MemoryRegistry) Create(userID int64) (string, error) {
	token, err := r.tokens()
	if err != nil {
		return "", err
	}

	e := entry{userID: userID}
	if r.ttl > 0 {
		e.expiresAt = r.now().Add(r.ttl)
	}

	r.mu.Lock()
	r.sessions[token] = e
	r.mu.Unlock()
	return token, nil
}

func (r *MemoryRegistry) Resolve(token string) (int64, error) {
	r.mu.RLock()
	e, ok := r.sessions[token]
	r.mu.RUnlock()

	if !ok {
		return 0, ErrNotFound
	}
	if !e.expiresAt.IsZero() && e.expiresAt.Before(r.now()) {
		// lazy expiry: drop the stale entry before the sweep gets to it
		r.Revoke(token)
		return 0, ErrNotFound
	}
	return e.userID, nil
}

func (r *MemoryRegistry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}

// StartSweep purges expired sessions every interval until ctx is done.
func (r *MemoryRegistry) StartSweep(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep()
			}
		}
	}()
}

func (r *MemoryRegistry) sweep() {
	now := r.now()
	r.mu.Lock()
	for token, e := range r.sessions {
		if !e.expiresAt.IsZero() && e.expiresAt.Before(now) {
			delete(r.sessions, token)
		}
	}
	r.mu.Unlock()
}
