// This file implements the patterns command for inspecting the coordination
// pattern catalog.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/veltaire/planforge/core/pattern"
)

var patternsJSON bool

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the supported coordination patterns",
	Long: `List the multi-agent coordination patterns a blueprint can be built
around, with each pattern's team size and coordination model.`,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().BoolVar(&patternsJSON, "json", false, "emit JSON output")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	registry := pattern.NewRegistry()

	if patternsJSON {
		var records []pattern.Record
		for _, name := range registry.Names() {
			rec, _ := registry.Get(name)
			records = append(records, rec)
		}
		return printJSON(records)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tAGENTS\tCOORDINATION")
	for _, name := range registry.Names() {
		rec, _ := registry.Get(name)
		marker := ""
		if name == pattern.Default {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%s%s\t%d\t%s\n", rec.DisplayName, marker, rec.AgentCount, rec.Coordination)
	}
	return w.Flush()
}
