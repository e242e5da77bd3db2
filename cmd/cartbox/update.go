// Update command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cartbox/pkg/types"
)

var (
	updateID          string
	updateName        string
	updateDescription string
	updatePrice       string
	updateQuantity    string
	updateOptions     []string
)

var updateCmd = &cobra.Command{
	Use:   "update ROWID",
	Short: "Update an item row",
	Long: `Update the item row at ROWID. Only the given flags change; the rest
of the row keeps its current values. Changing the id or the options
changes the row's identity, and the row merges into any existing row at
the new identity by summing quantities. Setting the quantity to zero or
less removes the row.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch types.ItemPatch
		if cmd.Flags().Changed("id") {
			patch.ID = &updateID
		}
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescription
		}
		if cmd.Flags().Changed("price") {
			price, err := parsePrice(updatePrice)
			if err != nil {
				return err
			}
			patch.Price = &price
		}
		if cmd.Flags().Changed("qty") {
			qty, err := parseQuantity(updateQuantity)
			if err != nil {
				return err
			}
			patch.Quantity = &qty
		}
		if cmd.Flags().Changed("option") {
			opts, err := parseOptions(updateOptions)
			if err != nil {
				return err
			}
			patch.Options = &opts
		}

		li, err := activeCart.UpdateItem(args[0], patch)
		if err != nil {
			return err
		}
		if li == nil {
			fmt.Println("removed", args[0])
			return nil
		}
		return printLineResult(li)
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateID, "id", "", "new item identifier")
	updateCmd.Flags().StringVar(&updateName, "name", "", "new item name")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new item description")
	updateCmd.Flags().StringVar(&updatePrice, "price", "", "new unit price")
	updateCmd.Flags().StringVar(&updateQuantity, "qty", "", "new quantity; zero or less removes the row")
	updateCmd.Flags().StringArrayVar(&updateOptions, "option", nil, "replacement option set as key=value (repeatable)")
}
