package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// lintCmd lints component usage: unknown components are errors,
// low-maturity components are warnings or informational findings.
var lintCmd = &cobra.Command{
	Use:   "lint <name>...",
	Short: "Lint component usage against maturity guidance",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		result, err := engine.LintComponents(cmd.Context(), args)
		if err != nil {
			return err
		}
		if jsonOutput {
			if err := printJSON(result); err != nil {
				return err
			}
		} else {
			for _, issue := range result.Issues {
				fmt.Printf("%-7s %s: %s (%s)\n", issue.Severity, issue.Component, issue.Message, issue.Type)
			}
			fmt.Println(result.Summary)
		}

		if result.HasErrors {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
