package model

// RewriteMode selects how specifiers are substituted in module content.
type RewriteMode string

const (
	// RewriteTextual replaces every verbatim occurrence of a specifier
	// anywhere in the content, including comments and unrelated strings.
	RewriteTextual RewriteMode = "textual"
	// RewriteScoped replaces only the import-specifier ranges reported by the
	// syntax tree.
	RewriteScoped RewriteMode = "scoped"
)

// Valid reports whether mode is a known rewrite mode.
func (mode RewriteMode) Valid() bool {
	return mode == RewriteTextual || mode == RewriteScoped
}
