// Package cli provides the docsmd command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "docsmd",
	Short: "Convert Google Docs to Markdown",
	Long: `docsmd converts Google Docs documents to Markdown.

Documents can be converted offline from Docs API JSON, or fetched from
Google Drive and exported to disk. Exports carry front matter with the
document and revision IDs, so unchanged documents are skipped on the
next export.

Examples:
  # Offline conversion
  docsmd convert document.json -o notes.md

  # Sign in, then export by URL
  docsmd auth configure
  docsmd auth login
  docsmd export https://docs.google.com/document/d/<id>/edit -o notes/`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.docsmd)")
}

// Execute runs the root command with ctx and releases the application
// resources afterwards.
func Execute(ctx context.Context) error {
	defer closeApp()
	return rootCmd.ExecuteContext(ctx)
}
