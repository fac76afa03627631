// Package local stores item images on the local filesystem and serves them
// over HTTP. It backs development setups without object storage.
package local

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Store writes objects below a root directory.
type Store struct {
	dir        string
	publicBase string
}

// New creates the root directory if needed and returns a Store whose public
// URLs start with publicBase.
func New(dir, publicBase string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("local storage: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("local storage: create %s: %w", dir, err)
	}
	return &Store{dir: dir, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

// Put writes body to key. The write is atomic: readers never observe a
// partial file.
func (s *Store) Put(ctx context.Context, key, _ string, body io.Reader, size int64) error {
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return fmt.Errorf("local storage: invalid key %q", key)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dst := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("local storage: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("local storage: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("local storage: write %s: %w", key, err)
	}
	if size > 0 && n != size {
		return fmt.Errorf("local storage: short write for %s: %d of %d bytes", key, n, size)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("local storage: commit %s: %w", key, err)
	}
	return nil
}

// PublicURL returns the URL the Handler serves key under.
func (s *Store) PublicURL(key string) string {
	return s.publicBase + "/" + key
}

// Handler serves stored objects. Mount it with the path prefix of
// publicBase stripped.
func (s *Store) Handler() http.Handler {
	return http.FileServerFS(os.DirFS(s.dir))
}
