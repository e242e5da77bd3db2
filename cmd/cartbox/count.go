// Count command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the total item quantity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(map[string]string{"count": activeCart.Count().String()})
		}
		fmt.Println(activeCart.Count())
		return nil
	},
}
