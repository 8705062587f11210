package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-crafter/pkg/logger"
)

// Registry maps session ids to stores. A session is born on first contact
// and dies when it goes idle past the TTL; that expiry is the server-side
// analogue of closing the tab - nothing survives it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	logger   logger.Logger
}

type sessionEntry struct {
	store    *Store
	lastSeen time.Time
}

func NewRegistry(ttl time.Duration, log logger.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		logger:   log,
	}
}

// Create starts a fresh session seeded with the default portfolio.
func (r *Registry) Create() (string, *Store) {
	id := uuid.NewString()
	st := New()

	r.mu.Lock()
	r.sessions[id] = &sessionEntry{store: st, lastSeen: time.Now()}
	r.mu.Unlock()

	r.logger.Info("session created", zap.String("session_id", id))
	return id, st
}

// Get returns the store for id and refreshes its idle clock.
func (r *Registry) Get(id string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = time.Now()
	return entry.store, true
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// StartSweeper evicts idle sessions every interval until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration) {
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

func (r *Registry) sweep() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	var evicted []*Store
	for id, entry := range r.sessions {
		if entry.lastSeen.Before(cutoff) {
			evicted = append(evicted, entry.store)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	// Closing ends any live preview streams on the evicted sessions.
	for _, st := range evicted {
		st.Close()
	}

	if len(evicted) > 0 {
		r.logger.Info("expired idle sessions", zap.Int("count", len(evicted)))
	}
}
