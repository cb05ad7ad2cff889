package gate

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryGate is the single-instance fallback used when Redis is not configured.
type MemoryGate struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]time.Time // key -> expiry
	now     func() time.Time
}

func NewMemoryGate(ttl time.Duration) *MemoryGate {
	return &MemoryGate{ttl: ttl, entries: make(map[string]time.Time), now: time.Now}
}

var _ Gate = (*MemoryGate)(nil)

func (g *MemoryGate) Disable(_ context.Context, sessionKey string, jobID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.entries[key(sessionKey, jobID)] = g.now().Add(g.ttl)
	return nil
}

func (g *MemoryGate) IsDisabled(_ context.Context, sessionKey string, jobID uuid.UUID) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := key(sessionKey, jobID)
	exp, ok := g.entries[k]
	if !ok {
		return false, nil
	}
	if !g.now().Before(exp) {
		delete(g.entries, k)
		return false, nil
	}
	return true, nil
}

func (g *MemoryGate) Clear(_ context.Context, sessionKey string, jobID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.entries, key(sessionKey, jobID))
	return nil
}

// Prune drops expired entries and returns how many were removed.
func (g *MemoryGate) Prune() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	removed := 0
	for k, exp := range g.entries {
		if !now.Before(exp) {
			delete(g.entries, k)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked entries, expired or not.
func (g *MemoryGate) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}
