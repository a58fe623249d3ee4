// Package cache provides the response cache behind the upstream client:
// raw query payloads keyed by (endpoint, arguments, session), removable by
// invalidation tag or by session scope.
package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is the in-process cache used in the single-instance deployment.
// Tag and session reverse indexes make invalidation and sign-out purges a
// set lookup instead of a scan.
type Memory struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[string]memoryEntry
	byTag    map[string]map[string]struct{}
	byScope  map[string]map[string]struct{}
	now      func() time.Time
}

type memoryEntry struct {
	value   []byte
	tags    []string
	scope   string
	expires time.Time
}

// NewMemory returns a Memory cache whose entries expire after ttl
// (0 disables expiry).
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		byTag:   make(map[string]map[string]struct{}),
		byScope: make(map[string]map[string]struct{}),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		m.removeLocked(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

// Set stores value under key; a later Set for the same key wins.
func (m *Memory) Set(_ context.Context, key string, value []byte, tags []string, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removeLocked(key)

	e := memoryEntry{value: value, tags: tags, scope: session}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.entries[key] = e

	for _, tag := range tags {
		if m.byTag[tag] == nil {
			m.byTag[tag] = make(map[string]struct{})
		}
		m.byTag[tag][key] = struct{}{}
	}
	if session != "" {
		if m.byScope[session] == nil {
			m.byScope[session] = make(map[string]struct{})
		}
		m.byScope[session][key] = struct{}{}
	}
	return nil
}

func (m *Memory) Invalidate(_ context.Context, tags ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tag := range tags {
		for key := range m.byTag[tag] {
			m.removeLocked(key)
		}
	}
	return nil
}

func (m *Memory) PurgeSession(_ context.Context, session string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.byScope[session] {
		m.removeLocked(key)
	}
	return nil
}

func (m *Memory) removeLocked(key string) {
	e, ok := m.entries[key]
	if !ok {
		return
	}
	delete(m.entries, key)
	for _, tag := range e.tags {
		delete(m.byTag[tag], key)
		if len(m.byTag[tag]) == 0 {
			delete(m.byTag, tag)
		}
	}
	if e.scope != "" {
		delete(m.byScope[e.scope], key)
		if len(m.byScope[e.scope]) == 0 {
			delete(m.byScope, e.scope)
		}
	}
}
