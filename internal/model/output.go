package model

// OutputFormat selects how a listing is printed.
type OutputFormat string

const (
	// FormatTable prints a human-readable table, or styled text on a terminal.
	FormatTable OutputFormat = "table"
	// FormatYAML prints a YAML manifest for scripts.
	FormatYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	return f == FormatTable || f == FormatYAML
}
