package domain

import (
	"bytes"
	"sort"
	"strings"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

// AliasFor derives the local alias of a module specifier: the final path
// segment with every byte outside [A-Za-z0-9_] replaced by '_', prefixed
// with '_'. Distinct specifiers sharing a final segment get the same alias.
func AliasFor(specifier string) m.Alias {
	segment := specifier
	if i := strings.LastIndexByte(specifier, '/'); i >= 0 {
		segment = specifier[i+1:]
	}

	var b strings.Builder

	b.Grow(len(segment) + 1)
	b.WriteByte('_')

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if isIdentByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}

	return m.Alias(b.String())
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// Rewriter substitutes aliases for specifiers in module content.
type Rewriter interface {
	Rewrite(content []byte, refs []m.ImportReference) []byte
}

// NewRewriter returns the Rewriter for mode. Unknown modes fall back to
// textual substitution.
func NewRewriter(mode m.RewriteMode) Rewriter {
	if mode == m.RewriteScoped {
		return scopedRewriter{}
	}

	return textualRewriter{}
}

// textualRewriter replaces every verbatim occurrence of each specifier,
// wherever it appears in the content. Specifiers are applied one after
// another in first-occurrence order.
type textualRewriter struct{}

func (textualRewriter) Rewrite(content []byte, refs []m.ImportReference) []byte {
	out := bytes.Clone(content)

	for _, specifier := range uniqueSpecifiers(refs) {
		out = bytes.ReplaceAll(out, []byte(specifier), []byte(AliasFor(specifier)))
	}

	return out
}

// scopedRewriter replaces only the specifier byte ranges recorded by the
// extractor and leaves every other occurrence untouched.
type scopedRewriter struct{}

func (scopedRewriter) Rewrite(content []byte, refs []m.ImportReference) []byte {
	ranges := make([]m.ImportReference, 0, len(refs))

	for _, ref := range refs {
		if ref.Start < 0 || ref.End > len(content) || ref.Start >= ref.End {
			continue
		}

		if string(content[ref.Start:ref.End]) != ref.Specifier {
			continue
		}

		ranges = append(ranges, ref)
	}

	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	var out bytes.Buffer

	out.Grow(len(content))

	last := 0

	for _, ref := range ranges {
		if ref.Start < last {
			continue
		}

		out.Write(content[last:ref.Start])
		out.WriteString(string(AliasFor(ref.Specifier)))
		last = ref.End
	}

	out.Write(content[last:])

	return out.Bytes()
}

func uniqueSpecifiers(refs []m.ImportReference) []string {
	seen := make(map[string]struct{}, len(refs))
	specifiers := make([]string, 0, len(refs))

	for _, ref := range refs {
		if ref.Specifier == "" {
			continue
		}

		if _, ok := seen[ref.Specifier]; ok {
			continue
		}

		seen[ref.Specifier] = struct{}{}
		specifiers = append(specifiers, ref.Specifier)
	}

	return specifiers
}
