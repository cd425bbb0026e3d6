// Package blob stores uploaded binaries and hands back public URLs. The
// repository layer treats those URLs as opaque strings.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store accepts a binary payload plus filename and returns a public URL.
type Store interface {
	// Configured reports whether uploads can be accepted at all.
	Configured() bool

	// Put writes the payload under the given relative filename and returns
	// the URL it will be served from.
	Put(ctx context.Context, filename string, r io.Reader) (string, error)
}

// DiskStore keeps blobs on the local filesystem under a root directory that
// the server exposes at baseURL. An empty root means uploads are not
// configured, mirroring how the hosted blob service behaves without its
// token.
type DiskStore struct {
	root    string
	baseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *DiskStore) Configured() bool {
	return s.root != ""
}

func (s *DiskStore) Put(_ context.Context, filename string, r io.Reader) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("blob storage is not configured")
	}

	// Filenames are produced by the upload handler, but refuse traversal
	// outside the root regardless.
	cleaned := filepath.Clean(filename)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid blob filename: %q", filename)
	}

	target := filepath.Join(s.root, cleaned)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.baseURL + "/" + filepath.ToSlash(cleaned), nil
}
