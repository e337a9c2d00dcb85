// Package memory provides an in-process KV driver used by tests and the
// "memory" build target.
package memory

import (
	"context"
	"sync"

	"github.com/hearthbook/hearthbook/internal/kv"
)

type KV struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *KV {
	return &KV{data: make(map[string]string)}
}

var _ kv.KV = (*KV)(nil)

func (m *KV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *KV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *KV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *KV) HealthPing(_ context.Context) error { return nil }
