// Detail command for the cartbox CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/dukaforge/cartbox/pkg/types"
)

var (
	detailID       string
	detailName     string
	detailKind     string
	detailPrice    string
	detailQuantity string
	detailOptions  []string
)

var detailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Add a detail charge to the cart",
	Long: `Add a non-catalog charge line (shipping, discount, adjustment, fee)
to the active cart instance. Detail lines live in their own partition,
carry the fixed detail tax rate, and never participate in discounts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := parsePrice(detailPrice)
		if err != nil {
			return err
		}
		qty, err := parseQuantity(detailQuantity)
		if err != nil {
			return err
		}
		opts, err := parseOptions(detailOptions)
		if err != nil {
			return err
		}

		li, err := activeCart.AddDetail(types.ItemSpec{
			ID:       detailID,
			Name:     detailName,
			Kind:     detailKind,
			Price:    price,
			Quantity: qty,
			Options:  opts,
		})
		if err != nil {
			return err
		}
		return printLineResult(li)
	},
}

func init() {
	detailCmd.Flags().StringVar(&detailID, "id", "", "detail identifier (required)")
	detailCmd.Flags().StringVar(&detailName, "name", "", "detail name (required)")
	detailCmd.Flags().StringVar(&detailKind, "kind", "", "detail kind: subtotal, discount, shipping, adjustment, adminfees (required)")
	detailCmd.Flags().StringVar(&detailPrice, "price", "0", "unit price")
	detailCmd.Flags().StringVar(&detailQuantity, "qty", "1", "quantity")
	detailCmd.Flags().StringArrayVar(&detailOptions, "option", nil, "detail option as key=value (repeatable)")
}
