package repository

import "sync"

// MemoryStateRepository is an in-process StateRepository; nothing survives
// the process.
type MemoryStateRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{entries: map[string]string{}}
}

func (r *MemoryStateRepository) Get(key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[key]
	return value, ok, nil
}

func (r *MemoryStateRepository) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = value
	return nil
}
