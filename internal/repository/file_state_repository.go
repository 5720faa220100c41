package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStateRepository keeps every key in one JSON object file.
// Each Set rewrites the whole file.
type FileStateRepository struct {
	mu   sync.RWMutex
	path string
}

// NewFileStateRepository creates a file-backed StateRepository. The parent
// directory is created if needed; the file itself is created on first Set.
func NewFileStateRepository(path string) (*FileStateRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}
	return &FileStateRepository{path: path}, nil
}

// Get reads the value stored under key
func (r *FileStateRepository) Get(key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := r.readLocked()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// Set writes value under key, keeping the other keys of the file
func (r *FileStateRepository) Set(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.readLocked()
	if err != nil {
		return err
	}
	entries[key] = value

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state file: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

func (r *FileStateRepository) readLocked() (map[string]string, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	// An empty file holds no keys
	if len(strings.TrimSpace(string(b))) == 0 {
		return map[string]string{}, nil
	}

	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", r.path, err)
	}
	return entries, nil
}
