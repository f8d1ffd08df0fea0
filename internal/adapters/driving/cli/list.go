package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// Flags for list.
var (
	listLimit     int
	listName      string
	listPageToken string
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list [drive-query]",
	Short: "List Google Docs in Drive",
	Long: `List the Google Docs documents visible to the signed-in user.

An optional Drive query clause narrows the listing; it is combined with
the Google Docs type filter.

Examples:
  docsmd list
  docsmd list --name "meeting"
  docsmd list "modifiedTime > '2024-01-01T00:00:00'" --limit 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum number of documents")
	listCmd.Flags().StringVar(&listName, "name", "", "only documents whose name contains this text")
	listCmd.Flags().StringVar(&listPageToken, "page-token", "", "continue a previous listing")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	var clauses []string
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		clauses = append(clauses, args[0])
	}
	if listName != "" {
		clauses = append(clauses, nameClause(listName))
	}

	page, err := a.export.List(cmd.Context(), domain.ListOptions{
		Query:     strings.Join(clauses, " and "),
		PageSize:  int64(listLimit),
		PageToken: listPageToken,
	})
	if err != nil {
		return fmt.Errorf("list documents: %w", authHint(err))
	}

	if listJSON {
		data, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal documents: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(page.Items) == 0 {
		cmd.Println("No documents found.")
		return nil
	}

	for _, ref := range page.Items {
		cmd.Printf("  %s  %s\n", ref.ID, ref.Name)
		if ref.ModifiedTime != "" {
			cmd.Printf("      Modified: %s\n", ref.ModifiedTime)
		}
	}
	if page.HasMore() {
		cmd.Printf("\nMore results: --page-token %s\n", page.NextPageToken)
	}
	return nil
}

// nameClause builds a Drive name filter, escaping quotes and backslashes.
func nameClause(name string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(name)
	return "name contains '" + escaped + "'"
}
