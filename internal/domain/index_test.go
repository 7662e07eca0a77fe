package domain

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	"github.com/mouse-blink/barrelgen/internal/adapter/mocks"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

func TestIndexGenerator_Record(t *testing.T) {
	tests := []struct {
		name      string
		importDir string
		extension string
		baseName  string
		want      string
	}{
		{
			name:      "default staging dir",
			importDir: "__registry__",
			extension: ".ts",
			baseName:  "button.ts",
			want:      "export * from './__registry__/button'",
		},
		{
			name:      "already relative",
			importDir: "./__registry__",
			extension: ".ts",
			baseName:  "icons.ts",
			want:      "export * from './__registry__/icons'",
		},
		{
			name:      "staging outside the root",
			importDir: "../shared/__registry__",
			extension: ".ts",
			baseName:  "card.ts",
			want:      "export * from '../shared/__registry__/card'",
		},
		{
			name:      "hidden staging dir",
			importDir: ".generated",
			extension: ".ts",
			baseName:  "card.ts",
			want:      "export * from './.generated/card'",
		},
		{
			name:      "tsx extension",
			importDir: "__registry__",
			extension: ".tsx",
			baseName:  "badge.tsx",
			want:      "export * from './__registry__/badge'",
		},
		{
			name:      "only the trailing extension is removed",
			importDir: "__registry__",
			extension: ".ts",
			baseName:  "date.utils.ts",
			want:      "export * from './__registry__/date.utils'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewIndexGenerator(adapter.NewLocalSourceFSAdapter(), "index.ts", tt.importDir, tt.extension)

			got := gen.Record(m.StagedModule{BaseName: tt.baseName})

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{tt.want}, gen.Statements())
		})
	}
}

func TestIndexGenerator_Flush(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "index.ts")
	writeTestFile(t, indexPath, "export * from './__registry__/stale'\n")

	gen := NewIndexGenerator(adapter.NewLocalSourceFSAdapter(), m.Path(indexPath), "__registry__", ".ts")
	gen.Record(m.StagedModule{BaseName: "button.ts"})
	gen.Record(m.StagedModule{BaseName: "icons.ts"})

	require.NoError(t, gen.Flush())

	want := "export * from './__registry__/button'\nexport * from './__registry__/icons'\n"
	assert.Equal(t, want, readTestFile(t, indexPath))
	assert.Equal(t, m.Path(indexPath), gen.Path())
}

func TestIndexGenerator_FlushEmpty(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "index.ts")
	writeTestFile(t, indexPath, "export * from './__registry__/stale'\n")

	gen := NewIndexGenerator(adapter.NewLocalSourceFSAdapter(), m.Path(indexPath), "__registry__", ".ts")
	require.NoError(t, gen.Flush())

	info, err := os.Stat(indexPath)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestIndexGenerator_StatementsIsACopy(t *testing.T) {
	gen := NewIndexGenerator(adapter.NewLocalSourceFSAdapter(), "index.ts", "__registry__", ".ts")
	gen.Record(m.StagedModule{BaseName: "a.ts"})

	statements := gen.Statements()
	statements[0] = "mutated"

	assert.Equal(t, "export * from './__registry__/a'", gen.Statements()[0])
}

func TestIndexGenerator_FlushFailure(t *testing.T) {
	fs := mocks.NewMockSourceFSAdapter(t)
	fs.On("WriteFile", m.Path("/reg/index.ts"), []byte{}, os.FileMode(indexFilePerm)).Return(errors.New("disk full"))

	err := NewIndexGenerator(fs, "/reg/index.ts", "__registry__", ".ts").Flush()

	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, "write", fsErr.Op)
	assert.Equal(t, m.Path("/reg/index.ts"), fsErr.Path)
}
