// Package cache provides optional VerdictCache adapters. The service treats
// a nil cache as "compute fresh every time"; these adapters exist for callers
// that want repeated lookups of the same identifier answered without rerunning
// the pipeline.
package cache

import (
	"context"
	"sync"
	"time"

	analysis "github.com/copyrightchain/ai-verifier/internal/domain/analysis"
)

// Memory is an in-process VerdictCache with per-entry TTL.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	verdict   analysis.Verdict
	expiresAt time.Time
}

// NewMemory creates a memory cache. Non-positive ttl means entries never expire.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, objectID string) (*analysis.Verdict, bool) {
	m.mu.RLock()
	entry, ok := m.entries[objectID]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && m.now().After(entry.expiresAt) {
		m.mu.Lock()
		// A concurrent Set may have refreshed the entry between the locks;
		// only drop it if it is still the expired one.
		if current, ok := m.entries[objectID]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(m.entries, objectID)
		}
		m.mu.Unlock()
		return nil, false
	}
	v := entry.verdict
	return &v, true
}

func (m *Memory) Set(_ context.Context, objectID string, v analysis.Verdict) {
	entry := memoryEntry{verdict: v}
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[objectID] = entry
	m.mu.Unlock()
}
