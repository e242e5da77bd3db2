// Clear and destroy commands for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clearItemsFlag      bool
	clearDetailsFlag    bool
	clearAttributesFlag bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	Long: `Empty the active instance. Without flags all three partitions are
cleared; with flags only the named partitions are.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearItemsFlag && !clearDetailsFlag && !clearAttributesFlag {
			activeCart.Clear()
			fmt.Println("cleared", activeCart.Instance())
			return nil
		}
		if clearItemsFlag {
			activeCart.ClearItems()
		}
		if clearDetailsFlag {
			activeCart.ClearDetails()
		}
		if clearAttributesFlag {
			activeCart.ClearAttributes()
		}
		fmt.Println("cleared", activeCart.Instance())
		return nil
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove the cart instance from the session entirely",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activeCart.Destroy()
		fmt.Println("destroyed", activeCart.Instance())
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearItemsFlag, "items", false, "clear only the items partition")
	clearCmd.Flags().BoolVar(&clearDetailsFlag, "details", false, "clear only the details partition")
	clearCmd.Flags().BoolVar(&clearAttributesFlag, "attributes", false, "clear only the attributes partition")
}
