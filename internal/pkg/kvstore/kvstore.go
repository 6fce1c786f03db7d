// Package kvstore persists small JSON documents under a data
// directory, one file per named bucket. It backs the manual-entry
// store and the settings store.
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound = errors.New("kvstore: bucket not found")
	ErrCorrupt  = errors.New("kvstore: corrupt bucket")
)

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// path resolves a bucket name to a file path, refusing anything that
// would escape the data directory.
func (s *Store) path(bucket string) (string, error) {
	clean := filepath.Clean(bucket)
	if clean == "." || clean == ".." || strings.ContainsAny(clean, `/\`) {
		return "", fmt.Errorf("invalid bucket name: %s", bucket)
	}
	return filepath.Join(s.dir, clean+".json"), nil
}

// Get decodes the bucket's document into dest. A missing bucket is
// ErrNotFound; unreadable JSON is ErrCorrupt. Callers are expected to
// degrade to empty state on either.
func (s *Store) Get(bucket string, dest any) error {
	p, err := s.path(bucket)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read bucket %s: %w", bucket, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, bucket, err)
	}
	return nil
}

// Put replaces the bucket's document. The write goes through a temp
// file and rename so a crash never leaves a half-written bucket.
func (s *Store) Put(bucket string, v any) error {
	p, err := s.path(bucket)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bucket %s: %w", bucket, err)
	}

	tmp, err := os.CreateTemp(s.dir, bucket+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write bucket %s: %w", bucket, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace bucket %s: %w", bucket, err)
	}
	return nil
}

// Delete removes the bucket. Deleting a missing bucket is a no-op.
func (s *Store) Delete(bucket string) error {
	p, err := s.path(bucket)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}
	return nil
}
