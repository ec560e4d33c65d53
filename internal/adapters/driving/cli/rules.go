package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the lint rules",
	Long:  `Lists every rule with the issue IDs it reports, in the order rules run.`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, _ []string) error {
	if ruleCatalog == nil {
		return errors.New("rule catalog not configured")
	}

	rules, err := ruleCatalog.List()
	if err != nil {
		return fmt.Errorf("listing rules: %w", err)
	}

	if outputFormat == formatJSON {
		data, err := json.MarshalIndent(rules, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rules: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, rule := range rules {
		cmd.Printf("%-22s %-28s %s\n", rule.Name, strings.Join(rule.IDs, ","), rule.Description)
	}
	return nil
}
