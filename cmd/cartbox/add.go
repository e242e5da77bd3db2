// Add command for the cartbox CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/cartbox/pkg/types"
)

var (
	addID           string
	addName         string
	addDescription  string
	addPrice        string
	addQuantity     string
	addOptions      []string
	addDiscountable bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item to the cart",
	Long: `Add a catalog item to the active cart instance. Adding an item with
the same id and options as an existing row sums the quantities onto one
row instead of creating a second row.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := parsePrice(addPrice)
		if err != nil {
			return err
		}
		qty, err := parseQuantity(addQuantity)
		if err != nil {
			return err
		}
		opts, err := parseOptions(addOptions)
		if err != nil {
			return err
		}

		li, err := activeCart.AddItem(types.ItemSpec{
			ID:           addID,
			Name:         addName,
			Description:  addDescription,
			Price:        price,
			Quantity:     qty,
			Discountable: addDiscountable,
			Options:      opts,
		})
		if err != nil {
			return err
		}
		return printLineResult(li)
	},
}

func init() {
	addCmd.Flags().StringVar(&addID, "id", "", "item identifier (required)")
	addCmd.Flags().StringVar(&addName, "name", "", "item name (required)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "item description")
	addCmd.Flags().StringVar(&addPrice, "price", "0", "unit price")
	addCmd.Flags().StringVar(&addQuantity, "qty", "1", "quantity")
	addCmd.Flags().StringArrayVar(&addOptions, "option", nil, "item option as key=value (repeatable)")
	addCmd.Flags().BoolVar(&addDiscountable, "discountable", true, "item participates in discounts")
}
