// Logout command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Run the logout hook for the cart",
	Long: `Apply the configured logout policy to the active instance: with
destroy_on_logout set, the cart's session entry is removed; otherwise the
cart is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activeCart.HandleLogout()
		if appConfig.DestroyOnLogout {
			fmt.Println("destroyed", activeCart.Instance())
		} else {
			fmt.Println("kept", activeCart.Instance())
		}
		return nil
	},
}
