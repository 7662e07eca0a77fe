package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

const listLongDescription = `List the modules a build would stage, with every import specifier and the
alias it would be rewritten to. Nothing is written.

Use --format yaml to print a manifest with the full path and SHA-256 of every
module, suitable for scripts.`

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List registry modules and their import aliases",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}

			format := m.OutputFormat(listFormatFlag)
			if !format.Valid() {
				return fmt.Errorf("unknown format %q (want %q or %q)", listFormatFlag, m.FormatTable, m.FormatYAML)
			}

			return workflow.List(runArgs(cfg), format)
		},
	}
	addPipelineFlags(cmd.Flags())
	cmd.Flags().StringVar(&listFormatFlag, "format", string(m.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
