package relay

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TempFile is a request-scoped copy of an uploaded resume. Each
// request owns exactly one and must Remove it before returning, on
// success and failure paths alike.
type TempFile struct {
	Path     string
	Original string
}

// SaveUpload persists an upload stream to dir under a
// collision-resistant name: timestamp, random suffix, then the
// original extension so format detection still works.
func SaveUpload(dir, originalName string, src io.Reader) (*TempFile, error) {
	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixNano(),
		strings.Split(uuid.New().String(), "-")[0],
		filepath.Ext(originalName),
	)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	return &TempFile{Path: path, Original: originalName}, nil
}

// Read returns the temp file's contents.
func (t *TempFile) Read() ([]byte, error) {
	return os.ReadFile(t.Path)
}

// Remove deletes the temp file. Deletion failure is logged and
// swallowed: the HTTP response is already decided by the time cleanup
// runs.
func (t *TempFile) Remove() {
	if t == nil {
		return
	}
	if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("[relay] failed to remove temp file %s: %v", t.Path, err)
	}
}
