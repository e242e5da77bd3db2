// Total command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the cart totals",
	Long: `Print the active instance's totals: the untaxed item subtotal, the
taxed item and detail totals, the combined tax, the final total, and the
item count.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(map[string]string{
				"subtotal":      activeCart.Subtotal().String(),
				"items_total":   activeCart.ItemsTotal(true).String(),
				"details_total": activeCart.DetailsTotal(true).String(),
				"tax_total":     activeCart.TaxTotal().String(),
				"total":         activeCart.Total().String(),
				"count":         activeCart.Count().String(),
			})
		}
		fmt.Printf("subtotal:      %s\n", activeCart.Subtotal())
		fmt.Printf("items total:   %s\n", activeCart.ItemsTotal(true))
		fmt.Printf("details total: %s\n", activeCart.DetailsTotal(true))
		fmt.Printf("tax total:     %s\n", activeCart.TaxTotal())
		fmt.Printf("total:         %s\n", activeCart.Total())
		fmt.Printf("count:         %s\n", activeCart.Count())
		return nil
	},
}
