package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// TSFileAdapter encapsulates TypeScript parsing so the domain layer can focus
// on import extraction while delegating grammar details to an infrastructure
// component.
type TSFileAdapter interface {
	// Parse builds a syntax tree for src. The grammar is chosen from the
	// filename extension. Syntax errors are reported as ERROR or MISSING
	// nodes inside the returned tree, not as an error value. Node offsets
	// index into src.
	Parse(filename string, src []byte) (*sitter.Tree, error)
}

// LocalTSFileAdapter provides a concrete TSFileAdapter backed by tree-sitter.
type LocalTSFileAdapter struct{}

// NewLocalTSFileAdapter constructs a LocalTSFileAdapter.
func NewLocalTSFileAdapter() *LocalTSFileAdapter {
	return &LocalTSFileAdapter{}
}

// Parse builds a tree-sitter tree for the provided filename/source pair.
func (a *LocalTSFileAdapter) Parse(filename string, src []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(languageFor(filename))

	tree, err := parser.ParseCtx(context.Background(), nil, maskNewerSyntax(src))
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse %s: %w", filename, err)
	}

	return tree, nil
}

func languageFor(filename string) *sitter.Language {
	if strings.EqualFold(filepath.Ext(filename), ".tsx") {
		return tsx.GetLanguage()
	}

	return typescript.GetLanguage()
}

// The bundled grammar predates a few TypeScript 5.x forms that carry no
// import information. Each pattern's first group is blanked before parsing.
var newerSyntax = []*regexp.Regexp{
	// export type * from './types'
	regexp.MustCompile(`\bexport\s+(type)\s*\*`),
	// interface Box<in out T>
	regexp.MustCompile(`[<,]\s*((?:in\s+)?out|in)\s+[A-Za-z_$]`),
	// import data from './data.json' with { type: 'json' }
	regexp.MustCompile(`(?:\bfrom|\bimport)\s*(?:"[^"\n]*"|'[^'\n]*')\s*((?:assert|with)\s*\{[^}]*\})`),
}

// maskNewerSyntax returns src with the constructs above replaced by spaces.
// Newlines are kept and the length is unchanged, so offsets and rows still
// match the original source.
func maskNewerSyntax(src []byte) []byte {
	var masked []byte

	for _, re := range newerSyntax {
		for _, loc := range re.FindAllSubmatchIndex(src, -1) {
			if masked == nil {
				masked = append([]byte(nil), src...)
			}

			for i := loc[2]; i < loc[3]; i++ {
				if masked[i] != '\n' && masked[i] != '\r' {
					masked[i] = ' '
				}
			}
		}
	}

	if masked == nil {
		return src
	}

	return masked
}
