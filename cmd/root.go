// Package cmd provides the root command and CLI setup for barrelgen.
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/barrelgen/internal/adapter"
	"github.com/mouse-blink/barrelgen/internal/config"
	"github.com/mouse-blink/barrelgen/internal/controller"
	"github.com/mouse-blink/barrelgen/internal/domain"
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "barrelgen"})

var fsAdapter adapter.SourceFSAdapter
var tsAdapter adapter.TSFileAdapter
var envStore adapter.EnvStore
var orchestrator domain.Orchestrator
var envExporter domain.EnvExporter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	tsAdapter = adapter.NewLocalTSFileAdapter()
	envStore = adapter.NewEnvStore(fsAdapter)
	orchestrator = domain.NewOrchestrator(fsAdapter, tsAdapter, logger)
	envExporter = domain.NewEnvExporter(envStore)
	workflow = domain.NewWorkflow(
		fsAdapter,
		tsAdapter,
		ui,
		orchestrator,
		logger,
	)
}

var configFileFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "barrelgen [dir]",
		Short:        "Compile a directory of TypeScript modules into an import-free registry",
		Long:         buildLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runBuild,
	}
	cmd.PersistentFlags().StringVarP(&configFileFlag, "config", "c", "", "config file (default: barrelgen.yaml in the registry root)")
	addPipelineFlags(cmd.Flags())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func addPipelineFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig()

	flags.String("staging-dir", defaults.StagingDir, "staging directory inside the registry root, wiped on every run")
	flags.String("index", defaults.IndexFile, "registry index file name inside the registry root")
	flags.String("ext", defaults.Extension, "source module extension")
	flags.String("rewrite", defaults.RewriteMode, "specifier rewrite mode: textual or scoped")
	flags.BoolP("verbose", "v", defaults.Verbose, "enable debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	opts := config.LoadOptions{
		ConfigFile: configFileFlag,
		Flags:      cmd.Flags(),
	}
	if len(args) > 0 {
		opts.Root = args[0]
	}

	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}

	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	logger.Debug("configuration loaded", "root", cfg.Root, "staging", cfg.StagingDir, "index", cfg.IndexFile, "rewrite", cfg.RewriteMode)

	return cfg, nil
}

func runArgs(cfg *config.Config) domain.RunArgs {
	return domain.RunArgs{
		Root:        m.Path(cfg.Root),
		StagingDir:  cfg.StagingDir,
		IndexFile:   cfg.IndexFile,
		Extension:   cfg.Extension,
		RewriteMode: m.RewriteMode(cfg.RewriteMode),
	}
}
