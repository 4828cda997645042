// Package blob stores raw file bytes on local disk under a single root
// directory.  Keys are absolute paths built from a random UUID, so
// concurrent uploads never collide without any coordination.  Derived
// blobs (thumbnails) live next to their source under the same key plus
// a suffix.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a key has no blob behind it, either
// because it was never written or because storage went inconsistent.
var ErrNotFound = errors.New("blob not found")

// Store writes and reads blobs under Root.  The root directory is
// created lazily on the first write, matching the behaviour of the
// deployment this service replaces.
type Store struct {
	Root string
}

func NewStore(root string) *Store { return &Store{Root: root} }

// Put writes p under a fresh random key and returns the key.
func (s *Store) Put(ctx context.Context, p []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return "", fmt.Errorf("create storage root: %w", err)
	}
	key := filepath.Join(s.Root, uuid.NewString())
	if err := os.WriteFile(key, p, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return key, nil
}

// PutAt writes p under an exact key, overwriting any previous content.
// The thumbnail worker uses it for the width-suffixed derived keys.
func (s *Store) PutAt(ctx context.Context, key string, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(key), 0o755); err != nil {
		return fmt.Errorf("create storage root: %w", err)
	}
	if err := os.WriteFile(key, p, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

// Get returns the bytes stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := os.ReadFile(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return p, nil
}
