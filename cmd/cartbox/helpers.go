// Shared helpers for cartbox CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukaforge/cartbox/pkg/types"
)

// generateUUID returns a UUIDv7 string, falling back to UUIDv4 if v7
// generation fails.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// parsePrice parses a price flag value into a decimal.
func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", types.ErrInvalidPrice, s)
	}
	return d, nil
}

// parseQuantity parses a quantity flag value into a decimal.
func parseQuantity(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", types.ErrInvalidQuantity, s)
	}
	return d, nil
}

// parseOptions converts repeated key=value flag values into an option
// bag, preserving the order given on the command line.
func parseOptions(pairs []string) (types.Options, error) {
	var opts types.Options
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid option %q, expected key=value", pair)
		}
		opts = append(opts, types.Option{Key: key, Value: value})
	}
	return opts, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printLine writes one line item in the plain text format shared by the
// add, update, and show commands.
func printLine(li *types.LineItem) {
	var opts string
	if li.Options.Len() > 0 {
		parts := make([]string, 0, li.Options.Len())
		for _, o := range li.Options {
			parts = append(parts, o.Key+"="+o.Value)
		}
		opts = " [" + strings.Join(parts, " ") + "]"
	}
	fmt.Printf("%s  %s  %s x %s = %s%s\n",
		li.RowID, li.Name, li.Quantity, li.Price, li.Total(), opts)
}

// printLineResult prints a line item as JSON or text depending on the
// --json flag.
func printLineResult(li *types.LineItem) error {
	if flagJSON {
		return printJSON(li)
	}
	printLine(li)
	return nil
}
