// Remove command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeDetailFlag bool

var removeCmd = &cobra.Command{
	Use:   "remove ROWID",
	Short: "Remove a row from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if removeDetailFlag {
			err = activeCart.RemoveDetail(args[0])
		} else {
			err = activeCart.RemoveItem(args[0])
		}
		if err != nil {
			return err
		}
		fmt.Println("removed", args[0])
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeDetailFlag, "detail", false, "remove from the details partition")
}
