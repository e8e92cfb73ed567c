// internal/store/memory.go
//
// In-memory registry of play sessions for the HTTP adapter.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Each Session serializes access to its game.State behind its own mutex,
//     so a State only ever sees one event at a time.
//   - Sessions idle for longer than the store's TTL are treated as gone by
//     Get even before Expire sweeps them.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-solo/internal/game"
)

// ErrNotFound is returned by Get for unknown or expired session IDs.
var ErrNotFound = errors.New("store: session not found")

// Session binds one player's game.State to an ID.
type Session struct {
	ID string

	mu       sync.Mutex // guards state and lastSeen
	state    *game.State
	lastSeen time.Time
}

// NewSession wraps g with a fresh random ID.
func NewSession(g *game.State) *Session {
	return &Session{ID: genID(), state: g, lastSeen: time.Now()}
}

// Do runs fn with exclusive access to the session's game and marks the
// session as seen.
func (s *Session) Do(fn func(g *game.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
	s.lastSeen = time.Now()
}

// LastSeen reports when the session last handled an event.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Store defines the persistence interface for sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID, or ErrNotFound when it is unknown or
	// has been idle longer than the store's TTL.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete forgets a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Expire drops sessions idle since before and returns how many went.
	Expire(ctx context.Context, before time.Time) int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	ttl time.Duration // zero disables idle expiry in Get

	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store whose sessions expire
// after ttl without an event. A ttl <= 0 keeps sessions until deleted.
func NewMemoryStore(ttl time.Duration) Store {
	return &memory{ttl: ttl, sessions: make(map[string]*Session)}
}

func (m *memory) Save(ctx context.Context, s *Session) error {
	if s == nil || s.ID == "" {
		return errors.New("store: session without ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if m.ttl > 0 && s.LastSeen().Before(time.Now().Add(-m.ttl)) {
		m.mu.Lock()
		if m.sessions[id] == s {
			delete(m.sessions, id)
		}
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	return s, nil
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Expire(ctx context.Context, before time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// genID creates a 22-char URL-safe, crypto-random identifier (no padding).
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
