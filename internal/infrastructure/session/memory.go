// Package session implements the session registry behind ports.SessionStore:
// an in-memory table for single-instance deployments and a Redis-backed one
// for when sessions must survive the process or be shared across instances.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// tokenBytes gives 192 bits of entropy; collisions are negligible.
const tokenBytes = 24

type entry struct {
	userID    string
	expiresAt time.Time
}

// MemoryStore keeps sessions in a mutex-guarded map. Entries are evicted
// lazily on Resolve; a process restart invalidates every session.
type MemoryStore struct {
	ttl time.Duration

	mu       sync.Mutex
	sessions map[string]entry

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Issue(ctx context.Context, userID string) (*ports.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	expiresAt := m.now().Add(m.ttl)

	m.mu.Lock()
	m.sessions[token] = entry{userID: userID, expiresAt: expiresAt}
	m.mu.Unlock()

	return &ports.Session{Token: token, UserID: userID, ExpiresAt: expiresAt}, nil
}

func (m *MemoryStore) Resolve(ctx context.Context, token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return "", domain.ErrInvalidSession
	}
	if m.now().After(e.expiresAt) {
		delete(m.sessions, token)
		return "", domain.ErrInvalidSession
	}
	return e.userID, nil
}

func (m *MemoryStore) Revoke(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
