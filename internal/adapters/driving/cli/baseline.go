package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage accepted issues",
	Long: `The baseline records the issues of a document as accepted. Linting
with --baseline then reports only issues that are not in it.

Entries match on rule, file, line text and message, so a baseline
survives edits elsewhere in the file.`,
}

var baselineSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Accept every current issue",
	Args:  cobra.NoArgs,
	RunE:  runBaselineSave,
}

var baselineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all accepted issues",
	Args:  cobra.NoArgs,
	RunE:  runBaselineClear,
}

var baselineShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List accepted issues",
	Args:  cobra.NoArgs,
	RunE:  runBaselineShow,
}

func init() {
	baselineCmd.AddCommand(baselineSaveCmd)
	baselineCmd.AddCommand(baselineClearCmd)
	baselineCmd.AddCommand(baselineShowCmd)
	rootCmd.AddCommand(baselineCmd)
}

func runBaselineSave(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	count, err := baselineService.Save(cmd.Context(), lintOptions())
	if err != nil {
		return fmt.Errorf("saving baseline: %w", err)
	}
	cmd.Printf("Baseline saved: %d issue(s) accepted.\n", count)
	return nil
}

func runBaselineClear(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	if err := baselineService.Clear(cmd.Context(), lintOptions()); err != nil {
		return fmt.Errorf("clearing baseline: %w", err)
	}
	cmd.Println("Baseline cleared.")
	return nil
}

func runBaselineShow(cmd *cobra.Command, _ []string) error {
	if baselineService == nil {
		return errors.New("baseline service not configured")
	}

	entries, err := baselineService.List(cmd.Context(), lintOptions())
	if err != nil {
		return fmt.Errorf("listing baseline: %w", err)
	}

	if outputFormat == formatJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal baseline: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		cmd.Println("Baseline is empty.")
		return nil
	}
	for _, entry := range entries {
		cmd.Printf("%s [%s] %s\n", entry.Path, entry.RuleID, entry.Message)
	}
	cmd.Printf("%d accepted issue(s).\n", len(entries))
	return nil
}
