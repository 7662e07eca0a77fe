package domain

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func examplePath(t *testing.T, elem ...string) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)

	repoRoot := filepath.Clean(filepath.Join(wd, "..", ".."))
	parts := append([]string{repoRoot, "examples"}, elem...)

	return filepath.Join(parts...)
}

// copyExample copies a fixture registry into a fresh temp dir so tests never
// write into the repository.
func copyExample(t *testing.T, name string) string {
	t.Helper()

	src := examplePath(t, name)
	dst := t.TempDir()

	entries, err := os.ReadDir(src)
	require.NoError(t, err)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		writeTestFile(t, filepath.Join(dst, entry.Name()), readTestFile(t, filepath.Join(src, entry.Name())))
	}

	return dst
}

// snapshotDir returns file name -> content for the regular files in dir.
func snapshotDir(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		files[entry.Name()] = readTestFile(t, filepath.Join(dir, entry.Name()))
	}

	return files
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()

	var names []string
	for name := range snapshotDir(t, dir) {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func defaultRunArgs(root string) RunArgs {
	return RunArgs{
		Root:        m.Path(root),
		StagingDir:  "__registry__",
		IndexFile:   "index.ts",
		Extension:   ".ts",
		RewriteMode: m.RewriteTextual,
	}
}

func newTestOrchestrator() Orchestrator {
	return NewOrchestrator(adapter.NewLocalSourceFSAdapter(), adapter.NewLocalTSFileAdapter(), nil)
}

func module(path, content string) m.SourceModule {
	return m.SourceModule{Path: m.Path(path), BaseName: filepath.Base(path), Content: []byte(content)}
}

func specifiers(refs []m.ImportReference) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.Specifier)
	}

	return out
}
