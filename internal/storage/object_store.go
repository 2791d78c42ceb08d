package storage

import (
	"context"
	"io"
)

// ObjectStore accepts binary uploads under a path and resolves publicly
// reachable URLs for them. Put must fail when an object already exists at
// the path; uploads never silently replace.
type ObjectStore interface {
	Put(ctx context.Context, path string, r io.Reader, contentType string) error
	PublicURL(path string) string
}
