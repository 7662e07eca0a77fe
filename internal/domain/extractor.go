package domain

import (
	"errors"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

var errSyntax = errors.New("invalid syntax")

const maxSnippet = 40

// Extractor finds the module specifiers referenced by a module's import
// declarations.
type Extractor interface {
	Extract(module m.SourceModule) ([]m.ImportReference, error)
}

type extractor struct {
	tsAdapter adapter.TSFileAdapter
}

// NewExtractor creates an Extractor backed by the given parser adapter.
func NewExtractor(tsAdapter adapter.TSFileAdapter) Extractor {
	return &extractor{tsAdapter: tsAdapter}
}

// Extract parses the module and returns its import specifiers in document
// order, duplicates preserved. Specifiers are returned verbatim and are not
// resolved.
func (e *extractor) Extract(module m.SourceModule) ([]m.ImportReference, error) {
	tree, err := e.tsAdapter.Parse(string(module.Path), module.Content)
	if err != nil {
		return nil, &ParseError{Path: module.Path, Err: err}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(module, root)
	}

	var refs []m.ImportReference

	collectImports(root, module.Content, &refs)

	return refs, nil
}

func collectImports(n *sitter.Node, src []byte, refs *[]m.ImportReference) {
	if n.Type() == "import_statement" {
		if ref, ok := importSource(n, src); ok {
			*refs = append(*refs, ref)
		}

		return
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		collectImports(n.NamedChild(i), src, refs)
	}
}

// importSource returns the specifier of an import statement. `import x =
// require("y")` keeps its string under the require clause instead.
func importSource(stmt *sitter.Node, src []byte) (m.ImportReference, bool) {
	source := stmt.ChildByFieldName("source")

	if source == nil {
		for i := 0; i < int(stmt.NamedChildCount()); i++ {
			child := stmt.NamedChild(i)
			if child.Type() == "import_require_clause" {
				source = firstStringChild(child)
				break
			}
		}
	}

	if source == nil || source.Type() != "string" {
		return m.ImportReference{}, false
	}

	// Strip the surrounding quotes.
	start := int(source.StartByte()) + 1
	end := int(source.EndByte()) - 1

	if end <= start {
		return m.ImportReference{}, false
	}

	return m.ImportReference{
		Specifier: string(src[start:end]),
		Start:     start,
		End:       end,
		Line:      int(source.StartPoint().Row) + 1,
	}, true
}

func firstStringChild(n *sitter.Node) *sitter.Node {
	if source := n.ChildByFieldName("source"); source != nil {
		return source
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "string" {
			return child
		}
	}

	return nil
}

func syntaxError(module m.SourceModule, root *sitter.Node) *ParseError {
	perr := &ParseError{Path: module.Path, Line: 1, Column: 1, Err: errSyntax}

	bad := firstErrorNode(root)
	if bad == nil {
		return perr
	}

	point := bad.StartPoint()
	perr.Line = int(point.Row) + 1
	perr.Column = int(point.Column) + 1

	if bad.IsMissing() {
		perr.Err = errors.New("missing " + bad.Type())

		return perr
	}

	perr.Snippet = snippet(bad.Content(module.Content))

	return perr
}

// firstErrorNode walks only the subtrees flagged as containing errors.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}

		if found := firstErrorNode(child); found != nil {
			return found
		}
	}

	return nil
}

func snippet(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}

	text = strings.TrimSpace(text)
	if len(text) > maxSnippet {
		text = text[:maxSnippet] + "…"
	}

	return text
}
