package types

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Default values applied by Config accessors.
const (
	DefaultTableName = "shoppingcart"
)

// tableNamePattern restricts table names to plain SQL identifiers, since
// the name is interpolated into statements.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config holds the cart-wide policy knobs consumed by the orchestrator
// and the CLI.
type Config struct {
	// TaxRate is the global tax rate applied to added items, as a
	// fraction (0.06 for 6%).
	TaxRate decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`

	// DefaultInstance overrides the instance name a new cart starts on.
	// Empty selects "default".
	DefaultInstance string `json:"default_instance" yaml:"default_instance"`

	// DestroyOnLogout removes the cart's session entry when the owning
	// user logs out.
	DestroyOnLogout bool `json:"destroy_on_logout" yaml:"destroy_on_logout"`

	// Database configures the durable stored-cart table.
	Database DatabaseConfig `json:"database" yaml:"database"`
}

// DatabaseConfig locates the durable stored-cart table.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `json:"path" yaml:"path"`

	// Table is the stored-cart table name. Empty selects "shoppingcart".
	Table string `json:"table" yaml:"table"`
}

// TableName returns the configured table name or the default.
func (d DatabaseConfig) TableName() string {
	if d.Table == "" {
		return DefaultTableName
	}
	return d.Table
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	one := decimal.NewFromInt(1)
	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThanOrEqual(one) {
		return ErrTaxRateOutOfRange
	}
	if c.Database.Table != "" && !tableNamePattern.MatchString(c.Database.Table) {
		return ErrTableNameInvalid
	}
	return nil
}
