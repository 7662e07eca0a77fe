package domain

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// RunArgs locates the registry for one pipeline run.
type RunArgs struct {
	Root m.Path
	// StagingDir is resolved against Root unless absolute.
	StagingDir string
	// IndexFile is a file name inside Root. It is never scanned as a module.
	IndexFile   string
	Extension   string
	RewriteMode m.RewriteMode
}

// Observer is notified of every orchestrator state transition.
type Observer func(state m.State)

// Orchestrator sequences one synchronous registry build:
// Idle -> Cleaning -> Processing(i) -> Indexing -> Done, or Aborted on the
// first parse or filesystem error. Nothing is retried or resumed.
type Orchestrator interface {
	Run(args RunArgs, observe Observer) (m.RunReport, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	tsAdapter adapter.TSFileAdapter
	logger    *log.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem and parser adapters. A nil logger discards output.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, tsAdapter adapter.TSFileAdapter, logger *log.Logger) Orchestrator {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		tsAdapter: tsAdapter,
		logger:    logger,
	}
}

// run holds the per-run resources. Staging and index are created fresh for
// every Run and never shared between runs.
type run struct {
	*orchestrator

	args    RunArgs
	observe Observer
	state   m.State
	report  m.RunReport

	root    m.Path
	staging Staging
	index   IndexGenerator
	modules []m.SourceModule
}

func (o *orchestrator) Run(args RunArgs, observe Observer) (m.RunReport, error) {
	r := &run{
		orchestrator: o,
		args:         args,
		observe:      observe,
		state:        m.State{Phase: m.PhaseIdle},
	}

	return r.execute()
}

func (r *run) execute() (m.RunReport, error) {
	r.transition(m.State{Phase: m.PhaseCleaning})

	if err := r.clean(); err != nil {
		return r.abort(err)
	}

	extractor := NewExtractor(r.tsAdapter)
	rewriter := NewRewriter(r.args.RewriteMode)

	for i, module := range r.modules {
		r.transition(m.State{Phase: m.PhaseProcessing, Index: i, Total: len(r.modules), Module: module.BaseName})

		if err := r.process(module, extractor, rewriter); err != nil {
			return r.abort(err)
		}
	}

	r.transition(m.State{Phase: m.PhaseIndexing})

	if err := r.index.Flush(); err != nil {
		return r.abort(err)
	}

	r.report.Statements = r.index.Statements()

	r.transition(m.State{Phase: m.PhaseDone})
	r.logger.Info("registry built", "modules", len(r.report.Staged), "index", r.report.Index)

	return r.report, nil
}

// clean validates the root, resets staging and scans the modules. The root
// is checked first so a mistyped path is never created by the reset.
func (r *run) clean() error {
	root, err := r.fsAdapter.AbsPath(r.args.Root)
	if err != nil {
		return fsError("resolve", r.args.Root, err)
	}

	info, err := r.fsAdapter.FileInfo(root)
	if err != nil {
		return fsError("stat", root, err)
	}

	if !info.IsDir() {
		return fsError("stat", root, errors.New("not a directory"))
	}

	r.root = root

	stagingDir := m.Path(r.args.StagingDir)
	if !filepath.IsAbs(r.args.StagingDir) {
		stagingDir = r.fsAdapter.JoinPath(string(root), r.args.StagingDir)
	}

	importDir, err := r.fsAdapter.RelPath(root, stagingDir)
	if err != nil {
		return fsError("resolve", stagingDir, err)
	}

	r.staging = NewStaging(r.fsAdapter, stagingDir)
	r.index = NewIndexGenerator(
		r.fsAdapter,
		r.fsAdapter.JoinPath(string(root), r.args.IndexFile),
		filepath.ToSlash(string(importDir)),
		r.args.Extension,
	)
	r.report.Index = r.index.Path()

	if err := r.staging.Reset(); err != nil {
		return err
	}

	r.logger.Debug("staging reset", "dir", stagingDir)

	modules, err := NewScanner(r.fsAdapter, r.args.Extension, r.args.IndexFile).Scan(root)
	if err != nil {
		return err
	}

	r.modules = modules
	r.logger.Debug("scanned registry", "root", root, "modules", len(modules))

	return nil
}

func (r *run) process(module m.SourceModule, extractor Extractor, rewriter Rewriter) error {
	refs, err := extractor.Extract(module)
	if err != nil {
		return err
	}

	content := rewriter.Rewrite(module.Content, refs)

	path, err := r.staging.Write(module.BaseName, content)
	if err != nil {
		return err
	}

	staged := m.StagedModule{
		BaseName:   module.BaseName,
		Path:       path,
		Content:    content,
		References: refs,
	}

	stmt := r.index.Record(staged)
	r.report.Staged = append(r.report.Staged, staged)

	r.logger.Info("staged module", "module", module.BaseName, "imports", len(refs))
	r.logger.Debug("recorded re-export", "statement", stmt)

	return nil
}

func (r *run) transition(next m.State) {
	r.logger.Debug("transition", "from", r.state, "to", next)

	r.state = next
	r.report.State = next

	if r.observe != nil {
		r.observe(next)
	}
}

func (r *run) abort(err error) (m.RunReport, error) {
	failed := r.state

	r.transition(m.State{Phase: m.PhaseAborted, Index: failed.Index, Total: failed.Total, Module: failed.Module})
	r.logger.Error("run aborted", "state", failed, "err", err)

	return r.report, fmt.Errorf("aborted while %s: %w", failed, err)
}
