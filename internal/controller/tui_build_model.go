package controller

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

const (
	defaultWidth = 80
	// maxVisibleStaged bounds the finished-module list in the build view.
	maxVisibleStaged = 8
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// buildModel follows one pipeline run through its state transitions.
type buildModel struct {
	width       int
	spinner     spinner.Model
	progressBar progress.Model
	state       m.State
	staged      []stagedItem
	finished    bool
	report      m.RunReport
	err         error
}

func newBuildModel() buildModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = accentStyle

	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)

	return buildModel{
		width:       defaultWidth,
		spinner:     spin,
		progressBar: prog,
		state:       m.State{Phase: m.PhaseIdle},
	}
}

func (bm buildModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return bm, tea.Quit
		}

	case spinner.TickMsg:
		if bm.finished {
			return bm, nil
		}

		var cmd tea.Cmd

		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd

	case transitionMsg:
		bm = bm.handleTransition(msg.state)

	case reportMsg:
		bm.finished = true
		bm.report = msg.report
		bm.err = msg.err

		return bm, tea.Quit
	}

	return bm, nil
}

func (bm buildModel) handleTransition(next m.State) buildModel {
	prev := bm.state

	// Leaving Processing(i) successfully means module i was staged.
	if prev.Phase == m.PhaseProcessing && next.Phase != m.PhaseAborted {
		bm.staged = append(bm.staged, stagedItem{name: prev.Module})
	}

	bm.state = next

	return bm
}

func (bm buildModel) percent() float64 {
	switch bm.state.Phase {
	case m.PhaseProcessing:
		if bm.state.Total == 0 {
			return 0
		}

		return float64(bm.state.Index) / float64(bm.state.Total)
	case m.PhaseIndexing, m.PhaseDone:
		return 1
	default:
		return 0
	}
}

func (bm buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("barrelgen registry build"))
	b.WriteString("\n")

	if bm.finished {
		b.WriteString(renderSummary(bm.report, bm.err))
		return b.String()
	}

	b.WriteString(summaryStyle.Render(fmt.Sprintf("%s %s", bm.spinner.View(), bm.phaseLabel())))
	b.WriteString("\n  ")
	b.WriteString(bm.progressBar.ViewAs(bm.percent()))
	b.WriteString("\n\n")

	start := 0
	if len(bm.staged) > maxVisibleStaged {
		start = len(bm.staged) - maxVisibleStaged
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  … %d more\n", start)))
	}

	for _, item := range bm.staged[start:] {
		b.WriteString("  ")
		b.WriteString(okStyle.Render("✓"))
		b.WriteString(" ")
		b.WriteString(truncateToWidth(item.name, bm.width-4))
		b.WriteString("\n")
	}

	return b.String()
}

func (bm buildModel) phaseLabel() string {
	switch bm.state.Phase {
	case m.PhaseCleaning:
		return "Resetting staging directory…"
	case m.PhaseProcessing:
		return fmt.Sprintf("Processing %s (%s / %s)",
			accentStyle.Render(bm.state.Module),
			accentStyle.Render(fmt.Sprintf("%d", bm.state.Index+1)),
			accentStyle.Render(fmt.Sprintf("%d", bm.state.Total)),
		)
	case m.PhaseIndexing:
		return "Writing registry index…"
	case m.PhaseDone:
		return "Done"
	case m.PhaseAborted:
		return errorStyle.Render("Aborted")
	default:
		return "Starting…"
	}
}

// renderSummary is the final frame of a build, shared with the no-program path.
func renderSummary(report m.RunReport, err error) string {
	if err != nil {
		return summaryStyle.Render(errorStyle.Render("✗ build failed: ")+err.Error()) + "\n"
	}

	var b strings.Builder

	b.WriteString(summaryStyle.Render(fmt.Sprintf("%s staged %s modules into %s",
		okStyle.Render("✓"),
		accentStyle.Render(fmt.Sprintf("%d", len(report.Staged))),
		accentStyle.Render(filepath.Base(string(report.Index))),
	)))
	b.WriteString("\n")

	for _, stmt := range report.Statements {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(stmt))
		b.WriteString("\n")
	}

	return b.String()
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
