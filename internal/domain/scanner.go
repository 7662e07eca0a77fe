package domain

import (
	"path/filepath"
	"strings"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// Scanner enumerates the eligible modules of a registry root.
type Scanner interface {
	Scan(root m.Path) ([]m.SourceModule, error)
}

type scanner struct {
	fsAdapter adapter.SourceFSAdapter
	extension string
	indexFile string
}

// NewScanner creates a Scanner that keeps files ending with extension and
// skips the file named indexFile.
func NewScanner(fsAdapter adapter.SourceFSAdapter, extension, indexFile string) Scanner {
	return &scanner{
		fsAdapter: fsAdapter,
		extension: extension,
		indexFile: indexFile,
	}
}

// Scan returns the modules directly under root in lexicographic file-name
// order. It never descends into subdirectories, so the staging directory is
// never rescanned.
func (s *scanner) Scan(root m.Path) ([]m.SourceModule, error) {
	absRoot, err := s.fsAdapter.AbsPath(root)
	if err != nil {
		return nil, fsError("resolve", root, err)
	}

	files, err := s.fsAdapter.ListFiles(absRoot)
	if err != nil {
		return nil, fsError("list", absRoot, err)
	}

	modules := make([]m.SourceModule, 0, len(files))

	for _, path := range files {
		base := filepath.Base(string(path))
		if !s.eligible(base) {
			continue
		}

		content, err := s.fsAdapter.ReadFile(path)
		if err != nil {
			return nil, fsError("read", path, err)
		}

		modules = append(modules, m.SourceModule{
			Path:     path,
			BaseName: base,
			Content:  content,
		})
	}

	return modules, nil
}

func (s *scanner) eligible(base string) bool {
	if base == s.indexFile {
		return false
	}

	// A bare ".ts" has no module name to re-export.
	return strings.HasSuffix(base, s.extension) && len(base) > len(s.extension)
}
