package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amponce/va-design-system-monitor/internal/types"
)

var (
	listForceRefresh bool
	listStatus       string
)

// listCmd lists every component in the table.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all design system components",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}

		if listStatus != "" {
			records, err := engine.GetComponentsByStatus(cmd.Context(), types.Status(strings.ToUpper(listStatus)))
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(records)
			}
			for _, record := range records {
				printComponentLine(record)
			}
			return nil
		}

		table, err := engine.GetComponents(cmd.Context(), listForceRefresh)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(table)
		}
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printComponentLine(table[name])
		}
		fmt.Printf("\n%d components\n", len(table))
		return nil
	},
}

// getCmd shows one component in full.
var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a single component's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		record, err := engine.GetComponentByName(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("component %q not found", args[0])
		}
		if jsonOutput {
			return printJSON(record)
		}

		fmt.Printf("%s (%s)\n", record.Name, record.InterfaceName)
		if record.TagName != "" {
			fmt.Printf("  Tag:            %s\n", record.TagName)
		}
		fmt.Printf("  Status:         %s\n", record.Status)
		fmt.Printf("  Maturity:       %s / %s\n", record.MaturityCategory, record.MaturityLevel)
		fmt.Printf("  Recommendation: %s\n", record.Recommendation)
		if record.GuidanceHref != "" {
			fmt.Printf("  Guidance:       %s\n", record.GuidanceHref)
		}
		if len(record.Translations) > 0 {
			fmt.Printf("  Translations:   %s\n", strings.Join(record.Translations, ", "))
		}
		fmt.Printf("  Properties:     %d\n", len(record.Properties))
		return nil
	},
}

func printComponentLine(record *types.ComponentRecord) {
	tag := record.TagName
	if tag == "" {
		tag = "-"
	}
	fmt.Printf("%-28s %-24s %s\n", record.Name, tag, record.Status)
}

func init() {
	listCmd.Flags().BoolVar(&listForceRefresh, "force-refresh", false, "bypass the cache and refetch the declaration file")
	listCmd.Flags().StringVar(&listStatus, "status", "", "only show components with this status")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}
