package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"restock/logger"
	"restock/models"
)

// SessionRegistry owns all live sessions. Every session starts from its own
// copy of the shipped catalog.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	base     []models.CatalogItem
	now      func() time.Time
}

// NewSessionRegistry validates the base catalog and creates an empty registry
func NewSessionRegistry(base []models.CatalogItem) (*SessionRegistry, error) {
	if _, err := NewCatalogStore(base); err != nil {
		return nil, err
	}
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		base:     append([]models.CatalogItem(nil), base...),
		now:      time.Now,
	}, nil
}

// Create starts a new session
func (r *SessionRegistry) Create() (*Session, error) {
	catalog, err := NewCatalogStore(r.base)
	if err != nil {
		return nil, err
	}

	session := newSession(uuid.NewString(), catalog, r.now)

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	logger.L().Infof("CreateSession: id=%s items=%d", session.ID, catalog.Len())
	return session, nil
}

// Get looks a session up by ID
func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.RLock()
	session, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

// Delete discards a session
func (r *SessionRegistry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep discards sessions idle for longer than ttl and returns how many were removed
func (r *SessionRegistry) Sweep(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, session := range r.sessions {
		if session.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done
func (r *SessionRegistry) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
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
				if n := r.Sweep(ttl); n > 0 {
					logger.L().Infof("SessionSweeper: discarded %d idle sessions", n)
				}
			}
		}
	}()
}
