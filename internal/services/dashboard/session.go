package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/louisbranch/poolview/internal/filter"
	"github.com/louisbranch/poolview/internal/platform/id"
)

// session owns one visitor's filter state and export choice. mu serializes
// interactions so each one completes before the next starts.
type session struct {
	id       string
	mu       sync.Mutex
	state    *filter.State
	export   string
	lastSeen time.Time
}

// sessionStore is a thread-safe in-memory session store with idle eviction.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	base     *filter.State
	export   string
	idle     time.Duration
	now      func() time.Time
}

func newSessionStore(base *filter.State, defaultExport string, idle time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		base:     base,
		export:   defaultExport,
		idle:     idle,
		now:      time.Now,
	}
}

// acquire returns the live session for sessionID or creates a fresh one.
// created reports whether the caller must issue a new cookie.
func (s *sessionStore) acquire(sessionID string) (sess *session, created bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if existing, ok := s.sessions[sessionID]; ok && sessionID != "" {
		if !s.expired(existing, now) {
			existing.lastSeen = now
			return existing, false, nil
		}
		delete(s.sessions, sessionID)
	}

	newID, err := id.NewID()
	if err != nil {
		return nil, false, fmt.Errorf("generate session id: %w", err)
	}
	sess = &session{
		id:       newID,
		state:    s.base.Clone(),
		export:   s.export,
		lastSeen: now,
	}
	s.sessions[newID] = sess
	return sess, true, nil
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	return s.idle > 0 && now.Sub(sess.lastSeen) > s.idle
}

// sweep evicts idle sessions and returns how many were removed.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for key, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, key)
			removed++
		}
	}
	return removed
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// runSweeper evicts idle sessions every interval until ctx ends.
func (s *sessionStore) runSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 || s.idle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 && onSweep != nil {
				onSweep(removed)
			}
		}
	}
}

// with runs fn while holding the session lock.
func (sess *session) with(fn func(*session) error) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}
