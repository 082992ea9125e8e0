package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/amponce/va-design-system-monitor/internal/registry"
)

var examplesOfficial bool

// examplesCmd generates or fetches usage examples for one or more
// components.
var examplesCmd = &cobra.Command{
	Use:   "examples <name>...",
	Short: "Show usage examples for components",
	Long: `Show usage examples for one or more components.

By default examples are synthesized from the component's parsed
properties. With --official the design system documentation is probed
first, falling back to synthesis when no official example exists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if examplesOfficial && len(args) > 1 && !jsonOutput {
			bar = progressbar.NewOptions(len(args),
				progressbar.OptionSetDescription("probing documentation"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionClearOnFinish(),
			)
		}

		var results []*registry.ExamplesResult
		for _, name := range args {
			var result *registry.ExamplesResult
			if examplesOfficial {
				result, err = engine.GetOfficialExamples(cmd.Context(), name)
			} else {
				result, err = engine.GetComponentExamples(cmd.Context(), name)
			}
			if bar != nil {
				bar.Add(1)
			}
			if err != nil {
				return err
			}
			if result == nil {
				return fmt.Errorf("component %q not found", name)
			}
			results = append(results, result)
		}

		if jsonOutput {
			return printJSON(results)
		}
		for _, result := range results {
			source := "generated"
			if result.Official {
				source = "official"
			}
			fmt.Printf("%s (%s examples)\n", result.Component, source)
			for _, ex := range result.Examples {
				fmt.Printf("\n## %s\n%s\n\n%s\n", ex.Title, ex.Description, ex.Code)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	examplesCmd.Flags().BoolVar(&examplesOfficial, "official", false, "probe the documentation site for official examples first")
	rootCmd.AddCommand(examplesCmd)
}
