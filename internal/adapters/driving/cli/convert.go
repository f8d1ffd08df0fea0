package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/connectors/filesystem"
	"github.com/custodia-labs/docsmd/internal/core/domain"
	"github.com/custodia-labs/docsmd/internal/logger"
	"github.com/custodia-labs/docsmd/internal/markdown"
)

// Flags for convert.
var (
	convertOutput string
	convertHTML   bool
	convertWatch  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.json|->",
	Short: "Convert a Docs API JSON document to Markdown",
	Long: `Convert a document saved from the Google Docs API (documents.get) to
Markdown. No network access or sign-in is needed.

Use - to read the document from standard input. Without --output the
Markdown is written to standard output.

Examples:
  docsmd convert document.json
  docsmd convert document.json -o notes.md --html
  curl ... | docsmd convert - > notes.md

  # Re-render whenever the file changes
  docsmd convert document.json -o notes.md --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "write Markdown to this file")
	convertCmd.Flags().BoolVar(&convertHTML, "html", false, "also render HTML (next to --output, or instead of Markdown on stdout)")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-convert when the input file changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	if convertWatch && input == "-" {
		return errors.New("--watch needs a file, not standard input")
	}

	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	if err := convertOnce(cmd, a, input); err != nil {
		if !convertWatch {
			return err
		}
		cmd.PrintErrf("Error: %v\n", err)
	}

	if !convertWatch {
		return nil
	}
	return watchAndConvert(cmd, a, input)
}

func convertOnce(cmd *cobra.Command, a *app, input string) error {
	content, err := readInput(cmd, input)
	if err != nil {
		return err
	}

	doc, err := a.export.Convert(cmd.Context(), content)
	if errors.Is(err, domain.ErrEmptyDocument) {
		cmd.PrintErrln("Document has no body content; nothing written.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("convert %s: %w", input, err)
	}

	return writeOutput(cmd, doc)
}

func readInput(cmd *cobra.Command, input string) ([]byte, error) {
	if input == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return content, nil
	}

	raw, err := filesystem.ReadDocument(input)
	if err != nil {
		return nil, err
	}
	return raw.Content, nil
}

func writeOutput(cmd *cobra.Command, doc *domain.Document) error {
	if convertOutput == "" {
		if convertHTML {
			html, err := markdown.RenderHTML([]byte(doc.Content))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(html)
			return err
		}
		_, err := io.WriteString(cmd.OutOrStdout(), doc.Content)
		return err
	}

	if dir := filepath.Dir(convertOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(convertOutput, []byte(doc.Content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", convertOutput, err)
	}
	cmd.Printf("Wrote %s\n", convertOutput)

	if convertHTML {
		html, err := markdown.RenderHTML([]byte(doc.Content))
		if err != nil {
			return err
		}
		htmlPath := strings.TrimSuffix(convertOutput, filepath.Ext(convertOutput)) + ".html"
		if err := os.WriteFile(htmlPath, html, 0644); err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
		cmd.Printf("Wrote %s\n", htmlPath)
	}
	return nil
}

// watchAndConvert re-converts input on every change until the command
// context is cancelled.
func watchAndConvert(cmd *cobra.Command, a *app, input string) error {
	watcher, err := filesystem.NewWatcher(input)
	if err != nil {
		return err
	}

	changes, err := watcher.Watch(cmd.Context())
	if err != nil {
		return err
	}

	cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", watcher.Path())
	for change := range changes {
		if change.Type == domain.ChangeDeleted {
			logger.Warn("%s was removed, waiting for it to come back", change.Path)
			continue
		}
		if err := convertOnce(cmd, a, input); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
		}
	}
	return nil
}
