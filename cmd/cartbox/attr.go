// Attribute commands for the cartbox CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Manage free-form cart attributes",
	Long: `Attributes are free-form key/value pairs stored alongside the cart's
line items: a coupon code, a delivery note, a customer reference. They
do not affect totals.`,
}

var attrSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a cart attribute",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activeCart.AddAttribute(args[0], args[1])
		fmt.Printf("%s=%s\n", args[0], args[1])
		return nil
	},
}

var attrGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a cart attribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := activeCart.Attribute(args[0])
		if !ok {
			return fmt.Errorf("attribute %q not set", args[0])
		}
		if flagJSON {
			return printJSON(map[string]any{args[0]: value})
		}
		fmt.Println(value)
		return nil
	},
}

var attrRemoveCmd = &cobra.Command{
	Use:   "remove KEY",
	Short: "Remove a cart attribute",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if activeCart.RemoveAttribute(args[0]) {
			fmt.Println("removed", args[0])
		} else {
			fmt.Println("not set", args[0])
		}
		return nil
	},
}

var attrListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cart attributes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		attrs := activeCart.Attributes()
		if flagJSON {
			return printJSON(attrs)
		}
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s=%v\n", k, attrs[k])
		}
		return nil
	},
}

func init() {
	attrCmd.AddCommand(attrSetCmd)
	attrCmd.AddCommand(attrGetCmd)
	attrCmd.AddCommand(attrRemoveCmd)
	attrCmd.AddCommand(attrListCmd)
}
