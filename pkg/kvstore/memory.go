package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store. It backs tests and any wiring that does not
// need durability.
type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailSets, when true, makes every Set return an error. Lets tests
	// exercise the swallow-persist-failure paths.
	FailSets bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string, dest any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("kvstore decode %q: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Set(ctx context.Context, key string, value any) error {
	if m.FailSets {
		return fmt.Errorf("kvstore set %q: store unavailable", key)
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.mu.Unlock()
	return nil
}

// SetRaw stores a pre-encoded document, valid JSON or not. Tests use it to
// seed malformed payloads.
func (m *Memory) SetRaw(key string, raw []byte) {
	m.mu.Lock()
	m.docs[key] = append([]byte(nil), raw...)
	m.mu.Unlock()
}
