package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"shopzone/internal/logger"

	"go.uber.org/zap"
)

const stateFileName = "local_storage.json"

// FileStore persists the key space as a single JSON file, rewritten on every
// mutation the way browser local storage commits synchronously. A corrupt
// file is logged and treated as absent state rather than an error.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	fs := &FileStore{
		path: filepath.Join(dir, stateFileName),
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(fs.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		logger.L().Warn("state file is corrupt, starting empty",
			zap.String("path", fs.path),
			zap.Error(err),
		)
		fs.data = make(map[string]json.RawMessage)
	}

	return fs, nil
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (f *FileStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := make(json.RawMessage, len(value))
	copy(v, value)
	f.data[key] = v
	return f.flush()
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.data, key)
	return f.flush()
}

func (f *FileStore) flush() error {
	raw, err := json.Marshal(f.data)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
