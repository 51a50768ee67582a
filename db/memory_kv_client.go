package db

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKVClient keeps every key in process memory. Used for development and tests.
type MemoryKVClient struct {
	data    map[string]string
	mu      sync.RWMutex
	context context.Context
}

// NewMemoryKVClient initializes an empty MemoryKVClient.
func NewMemoryKVClient(ctx context.Context) *MemoryKVClient {
	return &MemoryKVClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair.
func (m *MemoryKVClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key.
func (m *MemoryKVClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

func (m *MemoryKVClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Ping fails only once the client context is done.
func (m *MemoryKVClient) Ping() error {
	return m.context.Err()
}

func (m *MemoryKVClient) Close() error {
	return nil
}
