package session

import (
	"context"
	"sync"
	"time"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

type entry struct {
	snap      model.MemorySnapshot
	expiresAt time.Time
}

// InMemory is a process-local Store for single-instance deployments and
// tests.
type InMemory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

func NewInMemory(ttl time.Duration) *InMemory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemory{entries: make(map[string]entry), ttl: ttl}
}

func (s *InMemory) Load(_ context.Context, id string) (*model.MemorySnapshot, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, nil
	}
	snap := e.snap
	return &snap, nil
}

func (s *InMemory) Save(_ context.Context, id string, snap model.MemorySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = entry{snap: snap, expiresAt: time.Now().Add(s.ttl)}
	return nil
}
