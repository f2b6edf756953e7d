// Package filesystem replaces files atomically. Content is written to a temp
// file next to the destination, synced, and renamed over it, so readers
// never see a partly written config file.
package filesystem

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WriteResult describes a completed write.
type WriteResult struct {
	BytesWritten int64
	// Checksum is the hex encoded SHA256 of the content.
	Checksum string
}

// Store writes files below a root directory.
type Store struct {
	root *os.Root
}

// NewStore creates a new Store with the given root directory.
// The root provides sandboxed file operations preventing path traversal.
func NewStore(root *os.Root) *Store {
	return &Store{root: root}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (n int, err error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}

// Write atomically replaces path with content using a temp file and rename.
// It creates intermediate directories as needed. The file gets mode perm.
func (s *Store) Write(ctx context.Context, path string, content io.Reader, perm fs.FileMode) (WriteResult, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return WriteResult{}, ctxErr
	}

	destDir := filepath.Dir(path)
	if destDir != "." {
		if err := s.root.MkdirAll(destDir, 0o700); err != nil {
			return WriteResult{}, fmt.Errorf("could not create intermediate directories: %w", err)
		}
	}

	tmpFile := filepath.Join(destDir, tmpFileName())
	t, createErr := s.root.OpenFile(tmpFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if createErr != nil {
		return WriteResult{}, fmt.Errorf("could not open temp file: %w", createErr)
	}

	closed, success := false, false
	defer func() {
		if !closed {
			if closeErr := t.Close(); closeErr != nil {
				slog.Warn("failed to close tmp file", "err", closeErr)
			}
		}
		if !success {
			if rmErr := s.root.Remove(tmpFile); rmErr != nil {
				slog.Warn("failed to remove tmp file", "err", rmErr)
			}
		}
	}()

	h := sha256.New()
	w := io.MultiWriter(h, t)

	written, err := io.Copy(w, &ctxReader{ctx: ctx, r: content})
	if err != nil {
		return WriteResult{}, fmt.Errorf("could not copy file contents: %w", err)
	}

	if err := t.Sync(); err != nil {
		return WriteResult{}, fmt.Errorf("could not sync written file: %w", err)
	}
	closed = true
	if err := t.Close(); err != nil {
		return WriteResult{}, fmt.Errorf("could not close written file: %w", err)
	}

	if renameErr := s.root.Rename(tmpFile, path); renameErr != nil {
		return WriteResult{}, fmt.Errorf("failed to rename file: %w", renameErr)
	}

	success = true
	return WriteResult{BytesWritten: written, Checksum: hex.EncodeToString(h.Sum(nil))}, nil
}

// WriteFile atomically replaces the file at name. It matches os.WriteFile
// and creates missing parent directories.
func WriteFile(name string, data []byte, perm fs.FileMode) error {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("open directory: %w", err)
	}
	defer func() { _ = root.Close() }()

	result, err := NewStore(root).Write(context.Background(), base, bytes.NewReader(data), perm)
	if err != nil {
		return err
	}

	slog.Debug("file written", "path", name, "bytes", result.BytesWritten, "sha256", result.Checksum)
	return nil
}

func tmpFileName() string {
	return fmt.Sprintf(".t%s", uuid.New().String())
}
