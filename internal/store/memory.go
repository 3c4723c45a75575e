package store

import "sync"

// MemoryBackend keeps records in a map. It stands in for durable storage
// in tests.
type MemoryBackend struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemoryBackend creates an empty MemoryBackend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]string)}
}

// Get returns the value under key
func (m *MemoryBackend) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key
func (m *MemoryBackend) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Raw returns the serialized value under key, or "" when absent
func (m *MemoryBackend) Raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}
