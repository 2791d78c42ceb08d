package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FSStore is a filesystem-backed ObjectStore. Objects land under root and
// are served back at baseURL/storage/<path> by the HTTP layer's static
// route. A hosted bucket can replace it behind the same interface.
type FSStore struct {
	root    string
	baseURL string
}

var _ ObjectStore = (*FSStore)(nil)

// NewFSStore creates the store, ensuring the root directory exists.
func NewFSStore(root, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &FSStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Put writes the object at path, failing if one already exists there.
// The content type is implied by the path's extension on read-back.
func (s *FSStore) Put(ctx context.Context, path string, r io.Reader, contentType string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create object dir: %w", err)
	}

	// O_EXCL enforces the no-overwrite contract
	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create object %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return fmt.Errorf("write object %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return fmt.Errorf("close object %s: %w", path, err)
	}
	return nil
}

// PublicURL resolves the externally reachable URL for a stored object.
func (s *FSStore) PublicURL(path string) string {
	return s.baseURL + "/storage/" + path
}

// Root returns the directory the static file route should serve.
func (s *FSStore) Root() string {
	return s.root
}
