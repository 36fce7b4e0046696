package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zxkit/zxgraph/pkg/buildinfo"
)

// newRootCmd builds the root command with all subcommands registered.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "zxgraph",
		Short:        "zxgraph reads, inspects and renders ZX-calculus diagrams",
		Long:         `zxgraph is a CLI tool for working with ZX-calculus diagrams in the Quantomatic JSON format: normalizing documents, inspecting their structure, and rendering them to SVG, PNG or PDF.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFmtCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the zxgraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
