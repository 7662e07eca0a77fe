package controller

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

var failureColor = color.New(color.FgRed, color.Bold)

// SimpleUI implements UI using plain text on the command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	format m.OutputFormat
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start records the listing format. Nothing runs in the background.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := &StartConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	s.format = cfg.Format()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() error {
	return nil
}

// DisplayTransition prints one line per state change.
func (s *SimpleUI) DisplayTransition(state m.State) {
	switch state.Phase {
	case m.PhaseProcessing:
		s.printf("[%d/%d] %s\n", state.Index+1, state.Total, state.Module)
	case m.PhaseIdle:
	default:
		s.printf("%s\n", state.Phase)
	}
}

// DisplayReport prints the staged modules or the error that aborted the run.
func (s *SimpleUI) DisplayReport(report m.RunReport, err error) error {
	if err != nil {
		s.printf("%s\n", failureColor.Sprintf("build error: %v", err))
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Imports", "Export"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for i, staged := range report.Staged {
		statement := ""
		if i < len(report.Statements) {
			statement = report.Statements[i]
		}

		table.Append([]string{staged.BaseName, fmt.Sprintf("%d", len(staged.References)), statement})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(report.Staged)),
		"",
		filepath.Base(string(report.Index)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayListing prints every specifier with its alias, grouped by module.
func (s *SimpleUI) DisplayListing(listings []m.ModuleListing, err error) error {
	if err != nil {
		s.printf("%s\n", failureColor.Sprintf("list error: %v", err))
		return err
	}

	if s.format == m.FormatYAML {
		return writeListingYAML(s.cmd.OutOrStdout(), listings)
	}

	if len(listings) == 0 {
		s.printf("No modules found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Module", "Specifier", "Alias", "Hash"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAutoMergeCells(true)

	references := 0

	for _, listing := range listings {
		hash := shortHash(listing.Hash)

		if len(listing.References) == 0 {
			table.Append([]string{listing.Module.BaseName, "-", "-", hash})
			continue
		}

		for i, ref := range listing.References {
			table.Append([]string{listing.Module.BaseName, ref.Specifier, string(listing.Aliases[i]), hash})
			references++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Modules %d", len(listings)),
		fmt.Sprintf("%d", references),
		"",
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortHash(hash string) string {
	const n = 12

	hash = strings.TrimSpace(hash)
	if len(hash) > n {
		return hash[:n]
	}

	return hash
}
