package domain

import (
	"fmt"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

// ParseError reports a module whose content is not valid source syntax.
type ParseError struct {
	Path   m.Path
	Line   int
	Column int
	// Snippet is the text of the offending node, trimmed to a single line.
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error in %s:%d:%d", e.Path, e.Line, e.Column)
	if e.Snippet != "" {
		msg += fmt.Sprintf(" near %q", e.Snippet)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FilesystemError reports a failed directory or file operation.
type FilesystemError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}

func fsError(op string, path m.Path, err error) error {
	if err == nil {
		return nil
	}

	return &FilesystemError{Op: op, Path: path, Err: err}
}
