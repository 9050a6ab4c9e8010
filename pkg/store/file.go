package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/palletlab/warevis/pkg/observability"
)

// FileStore stores warehouse records as JSON files in a directory.
// Intended for CLI usage where a database is overkill.
type FileStore struct {
	mu  sync.RWMutex
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// If dir is empty, defaults to ~/.config/warevis/warehouses/.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		dir = filepath.Join(home, ".config", "warevis", "warehouses")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// path converts a warehouse ID to a file path. IDs are hashed so arbitrary
// identifiers never reach the filesystem, with the first 2 chars used as a
// subdirectory for distribution.
func (s *FileStore) path(id string) string {
	sum := sha256.Sum256([]byte(id))
	hash := hex.EncodeToString(sum[:])
	return filepath.Join(s.dir, hash[:2], hash[2:]+".json")
}

// Get retrieves a record by warehouse ID.
func (s *FileStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(id))
	observability.Store().OnStoreGet(ctx, "file", err == nil)
	if os.IsNotExist(err) {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}
	return rec, nil
}

// Set stores a record, replacing any existing record with the same ID.
// The write goes through a temp file and rename so readers never observe a
// partially written record.
func (s *FileStore) Set(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, err := s.read(rec.ID); err == nil {
		rec.CreatedAt = old.CreatedAt
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	path := s.path(rec.ID)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return err
	}
	observability.Store().OnStoreSet(ctx, "file", len(data))
	return nil
}

// read loads a record without taking the lock. Callers hold it.
func (s *FileStore) read(id string) (Record, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete removes a record.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return notFound(id)
	}
	if err == nil {
		observability.Store().OnStoreDelete(ctx, "file")
	}
	return err
}

// List returns the IDs of all stored warehouses, sorted.
// IDs are recovered from the record payloads, not the hashed file names.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	err := filepath.WalkDir(s.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".json") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// Skip foreign files rather than failing the whole listing.
			return nil
		}
		ids = append(ids, rec.ID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error {
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
