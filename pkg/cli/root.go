// Package cli implements the faunalog command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/faunalog/faunalog/pkg/logging"
)

var (
	// logLevel is the persistent --log-level flag.
	logLevel string

	// logger carries CLI diagnostics to stderr. Rendered blocks go to
	// stdout, so the two streams stay separable in a pipeline.
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "faunalog",
	Short: "faunalog renders captured Fauna client exchanges as debug logs",
	Long: `faunalog turns recorded Fauna client request/response exchanges into the
human-readable debug blocks the client's logging observer produces.

Feed it NDJSON (one exchange per line) or a YAML list, filter by method,
path prefix or status code, and optionally project the response content
through a JSONPath expression before rendering.`,
	// No Run function here means 'faunalog' with no args prints help.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Output: cmd.ErrOrStderr(),
		})
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
