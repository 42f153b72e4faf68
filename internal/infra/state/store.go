// Package state persists the most recent resolution so later runs can
// report which build options changed since the last configure pass.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"buildcfg/internal/domain"
)

var (
	bucketResolutions = []byte("resolutions")
	keyLast           = []byte("last")
)

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("resolution store is closed")

// Store is a bbolt-backed cache of the last resolution.
type Store struct {
	mu     sync.RWMutex
	db     *bolt.DB
	path   string
	closed bool
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("state path is required")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o755); err != nil {
		return nil, fmt.Errorf("ensure state dir: %w", err)
	}
	options := &bolt.Options{Timeout: time.Second}
	db, err := bolt.Open(trimmed, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, path: trimmed}, nil
}

func ensureSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketResolutions)
		return err
	})
}

// Close releases the underlying database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Save records resolution as the latest configure pass.
func (s *Store) Save(resolution domain.Resolution) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	data, err := json.Marshal(resolution)
	if err != nil {
		return fmt.Errorf("encode resolution: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketResolutions).Put(keyLast, data)
	})
}

// Last returns the most recently saved resolution. The second return is
// false when no resolution has been saved yet.
func (s *Store) Last() (domain.Resolution, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.Resolution{}, false, ErrStoreClosed
	}
	var (
		resolution domain.Resolution
		found      bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketResolutions).Get(keyLast)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &resolution); err != nil {
			return fmt.Errorf("decode resolution: %w", err)
		}
		found = true
		return nil
	})
	if err != nil {
		return domain.Resolution{}, false, err
	}
	return resolution, found, nil
}
