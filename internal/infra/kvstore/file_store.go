// Package kvstore implements a file-backed key-value store for small pieces
// of service state that must survive restarts.
package kvstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"domkarta/internal/domain/service"

	"github.com/pkg/errors"
)

type fileStore struct {
	path string

	mu      sync.Mutex
	entries map[string]string
	loaded  bool
}

// NewFileStore creates a store persisted as one JSON object at path. The
// file and its directory are created on first write; reads before that see
// an empty store.
func NewFileStore(path string) service.KeyValueStore {
	return &fileStore{
		path:    path,
		entries: make(map[string]string),
	}
}

func (s *fileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return "", false, err
	}

	value, ok := s.entries[key]

	return value, ok, nil
}

func (s *fileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	s.entries[key] = value

	return s.flushLocked()
}

func (s *fileStore) loadLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.loaded = true

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read state file")
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		return errors.Wrap(err, "parse state file")
	}
	s.loaded = true

	return nil
}

// flushLocked writes the whole store atomically: a rename never leaves a
// half-written state file behind a crash.
func (s *fileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode state")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create state directory")
	}

	tmp, err := os.CreateTemp(dir, ".state-*")
	if err != nil {
		return errors.Wrap(err, "create temp state file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "write temp state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close temp state file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replace state file")
	}

	return nil
}
