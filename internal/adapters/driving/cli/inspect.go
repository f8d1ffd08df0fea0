package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/connectors/google/docs"
	"github.com/custodia-labs/docsmd/internal/markdown"
)

var inspectJSON bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.md>",
	Short: "Show the front matter of an exported file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	meta, body, err := markdown.ParseFrontMatter(source)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	if meta.DocumentID == "" {
		return fmt.Errorf("%s has no docsmd front matter", args[0])
	}

	url := docs.ResolveWebURL(meta.DocumentID)
	if inspectJSON {
		data, err := json.MarshalIndent(struct {
			markdown.FrontMatter
			URL       string `json:"url"`
			BodyBytes int    `json:"bodyBytes"`
		}{meta, url, len(body)}, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Title:    %s\n", meta.Title)
	cmd.Printf("Document: %s\n", meta.DocumentID)
	cmd.Printf("Revision: %s\n", meta.RevisionID)
	cmd.Printf("URL:      %s\n", url)
	return nil
}
