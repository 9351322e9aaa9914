package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	values    []string
	fetchedAt time.Time
}

// Memory is a process-local Store. Entries expire after ttl.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[key]
	if !ok || m.now().Sub(e.fetchedAt) >= m.ttl {
		return nil, false, nil
	}
	return e.values, true, nil
}

func (m *Memory) Set(_ context.Context, key string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = entry{values: values, fetchedAt: m.now()}
	return nil
}
