package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// propertiesCmd shows a component's parsed property list.
var propertiesCmd = &cobra.Command{
	Use:   "properties <name>",
	Short: "Show a component's parsed properties",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		result, err := engine.GetComponentProperties(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if result == nil {
			return fmt.Errorf("component %q not found", args[0])
		}
		if jsonOutput {
			return printJSON(result)
		}

		fmt.Printf("%s properties:\n", result.Component)
		for _, prop := range result.Properties {
			marker := " "
			if prop.Optional {
				marker = "?"
			}
			fmt.Printf("  %s%s: %s\n", prop.Name, marker, prop.Type)
			if prop.Description != "" {
				fmt.Printf("      %s\n", prop.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}
