package controller

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

func updateBuildModel(t *testing.T, bm buildModel, msg tea.Msg) (buildModel, tea.Cmd) {
	t.Helper()

	updated, cmd := bm.Update(msg)

	next, ok := updated.(buildModel)
	if !ok {
		t.Fatalf("Update() returned %T, want buildModel", updated)
	}

	return next, cmd
}

func TestBuildModel_Init(t *testing.T) {
	if cmd := newBuildModel().Init(); cmd == nil {
		t.Fatalf("Init() returned nil")
	}
}

func TestBuildModel_TracksStagedModules(t *testing.T) {
	bm := newBuildModel()

	for _, state := range []m.State{
		{Phase: m.PhaseCleaning},
		{Phase: m.PhaseProcessing, Index: 0, Total: 2, Module: "button.ts"},
		{Phase: m.PhaseProcessing, Index: 1, Total: 2, Module: "icons.ts"},
	} {
		bm, _ = updateBuildModel(t, bm, transitionMsg{state: state})
	}

	if len(bm.staged) != 1 || bm.staged[0].name != "button.ts" {
		t.Fatalf("staged = %+v, want [button.ts]", bm.staged)
	}

	if got := bm.percent(); got != 0.5 {
		t.Fatalf("percent() = %v, want 0.5", got)
	}

	view := bm.View()
	for _, want := range []string{"barrelgen registry build", "Processing", "icons.ts", "✓", "button.ts"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	bm, _ = updateBuildModel(t, bm, transitionMsg{state: m.State{Phase: m.PhaseIndexing}})
	if len(bm.staged) != 2 {
		t.Fatalf("staged after indexing = %d, want 2", len(bm.staged))
	}

	if got := bm.percent(); got != 1 {
		t.Fatalf("percent() while indexing = %v, want 1", got)
	}
}

func TestBuildModel_AbortDoesNotStageFailedModule(t *testing.T) {
	bm := newBuildModel()

	bm, _ = updateBuildModel(t, bm, transitionMsg{state: m.State{Phase: m.PhaseProcessing, Total: 1, Module: "bad.ts"}})
	bm, _ = updateBuildModel(t, bm, transitionMsg{state: m.State{Phase: m.PhaseAborted, Total: 1, Module: "bad.ts"}})

	if len(bm.staged) != 0 {
		t.Fatalf("staged = %+v, want none", bm.staged)
	}

	if !strings.Contains(bm.View(), "Aborted") {
		t.Fatalf("View() missing aborted label\n%s", bm.View())
	}
}

func TestBuildModel_ReportQuits(t *testing.T) {
	bm := newBuildModel()

	bm, cmd := updateBuildModel(t, bm, reportMsg{
		report: m.RunReport{
			Staged:     []m.StagedModule{{BaseName: "button.ts"}},
			Index:      "/registry/index.ts",
			Statements: []string{"export * from './__registry__/button'"},
		},
	})

	if cmd == nil {
		t.Fatalf("Update(reportMsg) returned nil cmd, want tea.Quit")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("Update(reportMsg) cmd did not quit")
	}

	view := bm.View()
	for _, want := range []string{"staged", "index.ts", "export * from './__registry__/button'"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}

	// Spinner ticks stop once the summary is shown.
	if _, cmd := updateBuildModel(t, bm, spinner.TickMsg{}); cmd != nil {
		t.Fatalf("spinner tick after finish returned a cmd")
	}
}

func TestBuildModel_ReportError(t *testing.T) {
	bm, _ := updateBuildModel(t, newBuildModel(), reportMsg{err: errors.New("aborted while cleaning: boom")})

	if !strings.Contains(bm.View(), "build failed: aborted while cleaning: boom") {
		t.Fatalf("View() missing error\n%s", bm.View())
	}
}

func TestBuildModel_WindowAndKeys(t *testing.T) {
	bm, _ := updateBuildModel(t, newBuildModel(), tea.WindowSizeMsg{Width: 120, Height: 40})
	if bm.width != 120 {
		t.Fatalf("width = %d, want 120", bm.width)
	}

	if _, cmd := updateBuildModel(t, bm, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("ctrl+c did not quit")
	}

	if _, cmd := updateBuildModel(t, bm, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd != nil {
		t.Fatalf("q returned a cmd")
	}
}

func TestBuildModel_LimitsVisibleStaged(t *testing.T) {
	bm := newBuildModel()

	for i := range maxVisibleStaged + 3 {
		bm, _ = updateBuildModel(t, bm, transitionMsg{state: m.State{
			Phase:  m.PhaseProcessing,
			Index:  i,
			Total:  maxVisibleStaged + 4,
			Module: "module.ts",
		}})
	}

	if !strings.Contains(bm.View(), "2 more") {
		t.Fatalf("View() missing overflow marker\n%s", bm.View())
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}
