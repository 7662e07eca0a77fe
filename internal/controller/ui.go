// Package controller provides the terminal front-ends for the registry pipeline.
package controller

import (
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeBuild StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	format m.OutputFormat
}

// Mode returns the selected StartMode.
func (c *StartConfig) Mode() StartMode {
	return c.mode
}

// Format returns the listing format, FormatTable unless set.
func (c *StartConfig) Format() m.OutputFormat {
	if c.format == "" {
		return m.FormatTable
	}

	return c.format
}

// WithBuildMode sets the UI to follow a pipeline run.
func WithBuildMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBuild
	}
}

// WithListMode sets the UI to print a dry-run listing.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithOutputFormat selects how DisplayListing prints.
func WithOutputFormat(format m.OutputFormat) StartOption {
	return func(c *StartConfig) {
		c.format = format
	}
}

// UI defines how pipeline progress and results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	// Close stops the UI and waits for it to finish rendering.
	Close() error
	DisplayTransition(state m.State)
	DisplayReport(report m.RunReport, err error) error
	DisplayListing(listings []m.ModuleListing, err error) error
}
