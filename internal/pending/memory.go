package pending

import (
	"context"
	"sync"
)

// MemoryRegistry is a process-local Registry without expiry. It backs the
// server when Redis is unavailable and is used throughout the tests.
type MemoryRegistry struct {
	mu     sync.Mutex
	vendas map[string]uint
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{vendas: make(map[string]uint)}
}

func (m *MemoryRegistry) Pin(_ context.Context, operador string, vendaID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vendas[operador] = vendaID
	return nil
}

func (m *MemoryRegistry) Current(_ context.Context, operador string) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.vendas[operador]
	if !ok {
		return 0, ErrNone
	}
	return id, nil
}

func (m *MemoryRegistry) Clear(_ context.Context, operador string, vendaID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.vendas[operador] == vendaID {
		delete(m.vendas, operador)
	}
	return nil
}
