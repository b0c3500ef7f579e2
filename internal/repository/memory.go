package repository

import (
	"context"
	"sync"
)

type MemorySlot struct {
	mu     sync.RWMutex
	values map[string][]byte
	puts   int
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}

	return append([]byte(nil), v...), nil
}

func (m *MemorySlot) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = append([]byte(nil), value...)
	m.puts++

	return nil
}

// Puts returns how many writes the slot has seen.
func (m *MemorySlot) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.puts
}
