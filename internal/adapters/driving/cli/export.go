package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/logger"
)

// Flags for export.
var (
	exportOutputDir string
	exportForce     bool
	exportHTML      bool
	exportNoLedger  bool
)

var exportCmd = &cobra.Command{
	Use:   "export <doc-id|url>...",
	Short: "Fetch Google Docs and write them as Markdown",
	Long: `Fetch one or more documents from Google Docs and write each as
<title>.md in the output directory.

A document whose revision was already exported to the same file is
skipped; use --force to write it anyway. The output directory and HTML
rendering default to the export.dir and export.html settings.

Examples:
  docsmd export 1AbCdEf -o notes/
  docsmd export https://docs.google.com/document/d/1AbCdEf/edit --html
  docsmd export 1AbCdEf 2GhIjKl --force`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputDir, "output", "o", "", "output directory (default export.dir or .)")
	exportCmd.Flags().BoolVarP(&exportForce, "force", "f", false, "write even when the revision is unchanged")
	exportCmd.Flags().BoolVar(&exportHTML, "html", false, "also render an HTML file")
	exportCmd.Flags().BoolVar(&exportNoLedger, "no-ledger", false, "do not read or record the export history")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	dir := exportOutputDir
	if dir == "" {
		dir = a.config.GetString(domain.ConfigExportDir)
	}
	html := exportHTML || a.config.GetBool(domain.ConfigExportHTML)

	var errs []error
	for _, ref := range args {
		logger.Section("export " + ref)
		result, err := a.export.Export(cmd.Context(), domain.ExportRequest{
			Ref:       ref,
			OutputDir: dir,
			Force:     exportForce,
			HTML:      html,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ref, authHint(err)))
			continue
		}

		record := result.Record
		if result.Skipped {
			cmd.Printf("Unchanged %s (revision %s) %s\n", record.Title, record.RevisionID, record.Path)
			continue
		}
		cmd.Printf("Exported  %s -> %s\n", record.Title, record.Path)
		if record.HTMLPath != "" {
			cmd.Printf("          %s\n", record.HTMLPath)
		}
	}

	return errors.Join(errs...)
}

// authHint adds the next step to authentication errors.
func authHint(err error) error {
	if errors.Is(err, domain.ErrAuthRequired) {
		return fmt.Errorf("%w (run `docsmd auth login`, or set %s)", err, EnvAccessToken)
	}
	return err
}
