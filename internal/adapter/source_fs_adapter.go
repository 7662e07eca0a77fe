// Package adapter contains the infrastructure adapters used by the registry pipeline.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and staging modules. It hides direct `os` access so
// the pipeline logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps pipeline logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ListFiles returns the regular files directly under dir, sorted by name.
	// Symlinks resolving to regular files count as regular files.
	// Subdirectories are never descended into.
	ListFiles(dir m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RemoveAll removes a directory and all its contents. A missing path is not an error.
	RemoveAll(path m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// WriteFile replaces the file at path with content. The replacement is
	// atomic: readers observe either the previous file or the complete new one.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// AbsPath returns an absolute representation of path.
	AbsPath(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed implementation of SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the pipeline.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListFiles returns regular files in dir. Symlinks are followed and kept when
// their target is a regular file; dangling links are skipped. os.ReadDir sorts
// entries by filename, so the result is lexicographic.
func (a *LocalSourceFSAdapter) ListFiles(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	files := make([]m.Path, 0, len(entries))

	for _, entry := range entries {
		path := filepath.Join(string(dir), entry.Name())

		switch {
		case entry.Type().IsRegular():
		case entry.Type()&os.ModeSymlink != 0:
			info, statErr := os.Stat(path)
			if statErr != nil || !info.Mode().IsRegular() {
				continue
			}
		default:
			continue
		}

		files = append(files, m.Path(path))
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RemoveAll removes a directory and all its contents.
func (a *LocalSourceFSAdapter) RemoveAll(path m.Path) error {
	return os.RemoveAll(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// WriteFile writes content to a temporary sibling of path and renames it into
// place, so an interrupted write never leaves a truncated file behind.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	target := string(path)
	dir := filepath.Dir(target)
	pattern := "." + strings.TrimPrefix(filepath.Base(target), ".") + ".tmp-*"

	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	committed := false

	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	if err := os.Rename(tmpName, target); err != nil {
		return err
	}

	committed = true

	return nil
}

// AbsPath returns the absolute form of path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
