// Package domain contains the registry pipeline: scanning, import extraction,
// alias rewriting, staging and index generation.
package domain

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	"github.com/mouse-blink/barrelgen/internal/controller"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// Workflow defines the user-facing registry operations.
type Workflow interface {
	// Build runs the full pipeline and reports progress to the UI.
	Build(args RunArgs) error
	// List scans and extracts without writing anything.
	List(args RunArgs, format m.OutputFormat) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	tsAdapter adapter.TSFileAdapter
	ui        controller.UI
	orch      Orchestrator
	logger    *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	tsAdapter adapter.TSFileAdapter,
	ui controller.UI,
	orch Orchestrator,
	logger *log.Logger,
) Workflow {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		tsAdapter: tsAdapter,
		ui:        ui,
		orch:      orch,
		logger:    logger,
	}
}

func (w *workflow) Build(args RunArgs) error {
	if err := w.ui.Start(controller.WithBuildMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	report, runErr := w.orch.Run(args, w.ui.DisplayTransition)
	// DisplayReport echoes runErr back after rendering it; only other failures are new.
	if uiErr := w.ui.DisplayReport(report, runErr); uiErr != nil && !errors.Is(uiErr, runErr) {
		w.logger.Warn("ui failed to display report", "err", uiErr)
	}

	if err := w.ui.Close(); err != nil {
		w.logger.Warn("ui closed with error", "err", err)
	}

	return runErr
}

func (w *workflow) List(args RunArgs, format m.OutputFormat) error {
	if err := w.ui.Start(controller.WithListMode(), controller.WithOutputFormat(format)); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}

	defer func() {
		_ = w.ui.Close()
	}()

	listings, err := w.listModules(args)

	return w.ui.DisplayListing(listings, err)
}

func (w *workflow) listModules(args RunArgs) ([]m.ModuleListing, error) {
	modules, err := NewScanner(w.fsAdapter, args.Extension, args.IndexFile).Scan(args.Root)
	if err != nil {
		return nil, err
	}

	extractor := NewExtractor(w.tsAdapter)
	listings := make([]m.ModuleListing, 0, len(modules))

	for _, module := range modules {
		refs, err := extractor.Extract(module)
		if err != nil {
			return nil, err
		}

		hash, err := w.fsAdapter.HashFile(module.Path)
		if err != nil {
			return nil, fsError("hash", module.Path, err)
		}

		aliases := make([]m.Alias, len(refs))
		for i, ref := range refs {
			aliases[i] = AliasFor(ref.Specifier)
		}

		listings = append(listings, m.ModuleListing{
			Module:     module,
			Hash:       hash,
			References: refs,
			Aliases:    aliases,
		})

		w.logger.Debug("listed module", "module", module.BaseName, "imports", len(refs))
	}

	return listings, nil
}
