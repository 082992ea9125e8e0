package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var reportForceRefresh bool

// reportCmd summarizes the component table.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a design system summary report",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		report, err := engine.GenerateReport(cmd.Context(), reportForceRefresh)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(report)
		}

		fmt.Printf("Design System Report %s\n", report.ReportID)
		fmt.Printf("Updated: %s\n\n", report.LastUpdated.Format(time.RFC3339))
		fmt.Printf("Total components: %d\n\n", report.Total)

		fmt.Println("By status:")
		for status, count := range report.StatusCounts {
			fmt.Printf("  %-24s %d\n", status, count)
		}
		fmt.Println("\nBy category:")
		for category, count := range report.CategoryCounts {
			fmt.Printf("  %-24s %d\n", category, count)
		}
		if len(report.Recommended) > 0 {
			fmt.Printf("\nRecommended: %s\n", strings.Join(report.Recommended, ", "))
		}
		if len(report.Caution) > 0 {
			fmt.Printf("Caution: %s\n", strings.Join(report.Caution, ", "))
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportForceRefresh, "force-refresh", false, "bypass the cache and refetch the declaration file")
	rootCmd.AddCommand(reportCmd)
}
