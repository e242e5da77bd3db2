// Package main provides the cartbox CLI: a session-backed shopping cart
// kept under a data directory, with durable store/restore snapshots in
// SQLite.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dukaforge/cartbox/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps usage errors to exitUserError and everything else to
// exitSysError.
func exitCode(err error) int {
	userErrors := []error{
		types.ErrInvalidID,
		types.ErrInvalidName,
		types.ErrInvalidPrice,
		types.ErrInvalidQuantity,
		types.ErrInvalidKind,
		types.ErrDetailFromBuyable,
		types.ErrRowNotFound,
		types.ErrUnknownModel,
		types.ErrAlreadyStored,
		types.ErrTaxRateOutOfRange,
		types.ErrTableNameInvalid,
	}
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}
