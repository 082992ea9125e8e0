package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd checks component names against the design system.
var validateCmd = &cobra.Command{
	Use:   "validate <name>...",
	Short: "Validate that components exist in the design system",
	Long: `Validate that the named components exist in the design system.
Glob patterns such as 'va-alert*' are expanded against the component
table before lookup.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		result, err := engine.ValidateComponents(cmd.Context(), args)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(result)
		}

		for _, entry := range result.Validation {
			mark := "✓"
			detail := ""
			if !entry.Found {
				mark = "✗"
				detail = " (not found)"
			} else {
				detail = fmt.Sprintf(" → %s [%s]", entry.Component.Name, entry.Component.Status)
			}
			fmt.Printf("%s %s%s\n", mark, entry.Requested, detail)
		}
		fmt.Println(result.Summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
