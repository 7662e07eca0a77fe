// Package model defines the data structures shared by the registry pipeline.
package model

// Path represents a file system path.
type Path string

// SourceModule is one input module found in the registry root.
// It is never mutated; rewrites produce a new StagedModule.
type SourceModule struct {
	Path     Path // absolute path
	BaseName string
	Content  []byte
}

// ImportReference is a module specifier as written in an import declaration.
type ImportReference struct {
	Specifier string
	// Start and End delimit the specifier text (without quotes) inside the
	// module content.
	Start int
	End   int
	Line  int // 1-based
}

// Alias is the sanitized local identifier substituted for a specifier.
type Alias string
