package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

const envLongDescription = `Write a structured secret document to a dotenv file readable only by its
owner. The document is a flat JSON object read from --from, or from stdin
when --from is "-". Fetching the document from a secret store is left to the
caller, e.g.:

  aws secretsmanager get-secret-value --secret-id web --query SecretString \
    --output text | barrelgen env --out .env.local`

var envFromFlag string
var envOutFlag string

// envCmd represents the env command.
var envCmd = newEnvCmd()

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Write a secret document to a dotenv file",
		Long:  envLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()

			if envFromFlag != "-" {
				f, err := os.Open(envFromFlag)
				if err != nil {
					return fmt.Errorf("failed to open secret document: %w", err)
				}
				defer f.Close()

				in = f
			}

			count, err := envExporter.Export(in, m.Path(envOutFlag))
			if err != nil {
				return err
			}

			logger.Info("env file written", "path", envOutFlag, "variables", count)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s file successfully written with %d variables.\n", envOutFlag, count)

			return nil
		},
	}
	cmd.Flags().StringVarP(&envFromFlag, "from", "f", "-", "secret document path, - for stdin")
	cmd.Flags().StringVarP(&envOutFlag, "out", "o", ".env.local", "dotenv file to write")

	return cmd
}

func init() {
	rootCmd.AddCommand(envCmd)
}
