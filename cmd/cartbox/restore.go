// Restore command for the cartbox CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore IDENTIFIER",
	Short: "Restore a stored cart snapshot",
	Long: `Load the snapshot stored under IDENTIFIER back into the instance it
was stored from, overwriting rows with the same identity. The snapshot
is deleted after a successful restore. Restoring an unknown identifier
is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := activeCart.Restore(args[0]); err != nil {
			return err
		}
		fmt.Println("restored", args[0])
		return nil
	},
}
