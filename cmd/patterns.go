package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandpile-sim/sandpile-sim/pile"
)

// patternsCmd prints the built-in pattern catalogue with thresholds.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in toppling patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range pile.CatalogNames() {
			text := pile.Catalog[name]
			offsets, err := pile.ParsePattern(text)
			if err != nil {
				// Catalogue entries are validated by tests; reaching this
				// means the table itself is broken.
				fmt.Printf("%-6s <invalid: %v>\n", name, err)
				continue
			}
			fmt.Printf("%s (threshold %d)\n", name, len(offsets))
			for _, row := range strings.Fields(text) {
				fmt.Printf("    %s\n", row)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
