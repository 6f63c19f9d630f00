// Package diskv persists the journal's key-value state to local disk, the
// single-user equivalent of the browser local storage the journal format
// originated in.
package diskv

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	apperrors "socratic/internal/errors"
)

// Store is a Store backed by a diskv directory. Each key becomes one file
// holding its JSON value.
type Store struct {
	d *diskv.Diskv
}

// NewStore creates a disk-backed store rooted at basePath, creating the
// directory if needed.
func NewStore(basePath string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// Get reads the value for key from disk.
func (s *Store) Get(key string) (json.RawMessage, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, apperrors.StoreError("read", err)
	}
	return json.RawMessage(data), true, nil
}

// Set writes the value for key to disk.
func (s *Store) Set(key string, value json.RawMessage) error {
	if err := s.d.Write(key, value); err != nil {
		return apperrors.StoreError("write", err)
	}
	return nil
}

// Delete erases the file for key.
func (s *Store) Delete(key string) error {
	if err := s.d.Erase(key); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.StoreError("erase", err)
	}
	return nil
}
