// Store command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store [IDENTIFIER]",
	Short: "Snapshot the cart to durable storage",
	Long: `Write the active instance's content to the stored-carts table under
IDENTIFIER. When IDENTIFIER is omitted, a UUID is generated and printed.
Storing under an identifier that already holds a snapshot fails; restore
the snapshot first to free it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		identifier := generateUUID()
		if len(args) == 1 {
			identifier = args[0]
		}
		if err := activeCart.Store(identifier); err != nil {
			return err
		}
		fmt.Println("stored", identifier)
		return nil
	},
}
