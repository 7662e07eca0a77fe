package cmd

import (
	"github.com/spf13/cobra"
)

const buildLongDescription = `Build the registry: every module in the registry root whose name ends with
the source extension is parsed, its import specifiers are rewritten to local
aliases (the final path segment, sanitised and prefixed with "_"), and the
result is staged under the staging directory. The staging directory is wiped
and recreated on every run. Finally the index file is rewritten to re-export
every staged module in file-name order.

The run stops at the first syntax or filesystem error.`

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Build the registry index and staged modules",
		Long:  buildLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBuild,
	}
	addPipelineFlags(cmd.Flags())

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	return workflow.Build(runArgs(cfg))
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
