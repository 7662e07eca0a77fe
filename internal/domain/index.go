package domain

import (
	"fmt"
	"path"
	"strings"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

const indexFilePerm = 0o644

// IndexGenerator accumulates one re-export statement per staged module and
// writes them as the registry index.
type IndexGenerator interface {
	Path() m.Path
	// Record appends the statement for module and returns it.
	Record(module m.StagedModule) string
	Statements() []string
	// Flush replaces the index file with the recorded statements, one per line.
	Flush() error
}

type indexGenerator struct {
	fsAdapter  adapter.SourceFSAdapter
	path       m.Path
	importDir  string
	extension  string
	statements []string
}

// NewIndexGenerator creates an IndexGenerator writing to indexPath. importDir
// is the staging directory as seen from the index, e.g. "./__registry__".
func NewIndexGenerator(fsAdapter adapter.SourceFSAdapter, indexPath m.Path, importDir, extension string) IndexGenerator {
	return &indexGenerator{
		fsAdapter: fsAdapter,
		path:      indexPath,
		importDir: importDir,
		extension: extension,
	}
}

func (g *indexGenerator) Path() m.Path {
	return g.path
}

func (g *indexGenerator) Record(module m.StagedModule) string {
	target := path.Join(g.importDir, strings.TrimSuffix(module.BaseName, g.extension))

	// path.Join drops a leading "./", which would turn the import into a
	// package specifier.
	if !strings.HasPrefix(target, "./") && !strings.HasPrefix(target, "../") && !path.IsAbs(target) {
		target = "./" + target
	}

	stmt := fmt.Sprintf("export * from '%s'", target)
	g.statements = append(g.statements, stmt)

	return stmt
}

func (g *indexGenerator) Statements() []string {
	return append([]string(nil), g.statements...)
}

func (g *indexGenerator) Flush() error {
	var b strings.Builder

	for _, stmt := range g.statements {
		b.WriteString(stmt)
		b.WriteByte('\n')
	}

	if err := g.fsAdapter.WriteFile(g.path, []byte(b.String()), indexFilePerm); err != nil {
		return fsError("write", g.path, err)
	}

	return nil
}
