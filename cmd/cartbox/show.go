// Show command for the cartbox CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cartbox/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart contents",
	Long: `Print the active instance's items, detail charges, and attributes.
With --json the full content structure is printed as one document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(activeCart.Content())
		}

		fmt.Printf("instance: %s\n", activeCart.Instance())

		items := activeCart.Items()
		fmt.Printf("items (%d):\n", len(items))
		for _, li := range sortedLines(items) {
			fmt.Print("  ")
			printLine(li)
		}

		details := activeCart.Details()
		fmt.Printf("details (%d):\n", len(details))
		for _, li := range sortedLines(details) {
			fmt.Print("  ")
			printLine(li)
		}

		attrs := activeCart.Attributes()
		fmt.Printf("attributes (%d):\n", len(attrs))
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s=%v\n", k, attrs[k])
		}
		return nil
	},
}

// sortedLines orders a partition by name for stable output.
func sortedLines(partition map[string]*types.LineItem) []*types.LineItem {
	lines := make([]*types.LineItem, 0, len(partition))
	for _, li := range partition {
		lines = append(lines, li)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}
