package domain

import (
	"fmt"
	"path/filepath"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

const (
	stagingDirPerm = 0o755
	stagedFilePerm = 0o644
)

// Staging owns the staging directory for the duration of one run.
type Staging interface {
	Dir() m.Path
	// Reset removes the directory with all its contents and recreates it empty.
	Reset() error
	// Write atomically creates or replaces baseName inside the directory.
	Write(baseName string, content []byte) (m.Path, error)
}

type staging struct {
	fsAdapter adapter.SourceFSAdapter
	dir       m.Path
}

// NewStaging creates a Staging rooted at dir.
func NewStaging(fsAdapter adapter.SourceFSAdapter, dir m.Path) Staging {
	return &staging{fsAdapter: fsAdapter, dir: dir}
}

func (s *staging) Dir() m.Path {
	return s.dir
}

func (s *staging) Reset() error {
	if err := s.fsAdapter.RemoveAll(s.dir); err != nil {
		return fsError("remove", s.dir, err)
	}

	if err := s.fsAdapter.MkdirAll(s.dir, stagingDirPerm); err != nil {
		return fsError("create", s.dir, err)
	}

	return nil
}

func (s *staging) Write(baseName string, content []byte) (m.Path, error) {
	if baseName == "" || filepath.Base(baseName) != baseName {
		return "", fsError("write", m.Path(baseName), fmt.Errorf("not a plain file name"))
	}

	path := s.fsAdapter.JoinPath(string(s.dir), baseName)

	if err := s.fsAdapter.WriteFile(path, content, stagedFilePerm); err != nil {
		return "", fsError("write", path, err)
	}

	return path, nil
}
