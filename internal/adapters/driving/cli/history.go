package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show exported documents",
	Long:  `Show the export history, most recent first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	records, err := a.export.History(cmd.Context())
	if err != nil {
		return fmt.Errorf("reading export history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No exports yet.")
		return nil
	}

	for _, r := range records {
		cmd.Printf("  %s  %s\n", r.ExportedAt.Local().Format(time.DateTime), r.Title)
		cmd.Printf("      %s (revision %s)\n", r.Path, r.RevisionID)
	}
	return nil
}
