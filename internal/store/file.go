package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore keeps one JSON file per key inside a state directory.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFile creates the state directory if needed and returns a store over
// it. Callers should fall back to an in-memory store when this fails.
func NewFile(dir string, logger *zap.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory %q: %w", dir, err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (f *FileStore) Set(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		f.warn(key, err)
		return
	}
	if err := os.WriteFile(f.path(key), data, 0o644); err != nil {
		f.warn(key, err)
	}
}

// Delete removes the value under key. Absence is not an error.
func (f *FileStore) Delete(key string) {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		f.warn(key, err)
	}
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) warn(key string, err error) {
	if f.logger != nil {
		f.logger.Warn("saving state slice failed; continuing with in-memory value",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
