package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mode    StartMode
	format  m.OutputFormat
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the build view in its own goroutine. List mode renders
// statically and starts nothing.
func (t *TUI) Start(options ...StartOption) error {
	cfg := &StartConfig{mode: ModeBuild}
	for _, opt := range options {
		opt(cfg)
	}

	t.mode = cfg.mode
	t.format = cfg.Format()

	if t.mode != ModeBuild {
		return nil
	}

	t.program = tea.NewProgram(newBuildModel(), tea.WithOutput(t.output), tea.WithInput(nil))
	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()
		return err
	})

	return nil
}

// Close asks the program to quit and waits for its final frame.
func (t *TUI) Close() error {
	if t.program == nil {
		return nil
	}

	t.program.Quit()
	err := t.group.Wait()
	t.program = nil

	return err
}

// DisplayTransition forwards a state change to the build view.
func (t *TUI) DisplayTransition(state m.State) {
	if t.program == nil {
		return
	}

	t.program.Send(transitionMsg{state: state})
}

// DisplayReport hands the final report to the build view, which renders the
// summary and exits.
func (t *TUI) DisplayReport(report m.RunReport, err error) error {
	if t.program == nil {
		_, _ = fmt.Fprint(t.output, renderSummary(report, err))
		return err
	}

	t.program.Send(reportMsg{report: report, err: err})

	return err
}

// DisplayListing renders the dry-run listing with lipgloss styles.
func (t *TUI) DisplayListing(listings []m.ModuleListing, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n", errorStyle.Render("list error: "+err.Error()))
		return err
	}

	if t.format == m.FormatYAML {
		return writeListingYAML(t.output, listings)
	}

	_, _ = fmt.Fprint(t.output, renderListing(listings, defaultWidth))

	return nil
}
