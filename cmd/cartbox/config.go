// Config loading for the cartbox CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/dukaforge/cartbox/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyTaxRate         = "tax_rate"
	cfgKeyDefaultInstance = "default_instance"
	cfgKeyDestroyOnLogout = "destroy_on_logout"
	cfgKeyDataDir         = "data_dir"
	cfgKeyDatabasePath    = "database.path"
	cfgKeyDatabaseTable   = "database.table"

	defaultTaxRate = 0.06
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Cartbox CLI configuration

# Tax rate applied to items, as a fraction (0.06 = 6%).
tax_rate: 0.06

# Instance activated when --instance is not given.
default_instance: default

# Destroy the cart on logout instead of keeping it.
destroy_on_logout: false

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

database:
  # SQLite file for stored carts (default: <data-dir>/carts.db)
  # path:
  table: shoppingcart
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, creating the directory and a default config.yaml on first run.
// A missing config.yaml is not an error. The second return value is the
// data_dir value from the file, empty when unset.
func loadConfig(configDir string) (types.Config, string, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return types.Config{}, "", fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, "", fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyTaxRate, defaultTaxRate)
	v.SetDefault(cfgKeyDefaultInstance, "default")
	v.SetDefault(cfgKeyDestroyOnLogout, false)
	v.SetDefault(cfgKeyDatabaseTable, types.DefaultTableName)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, "", fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		TaxRate:         decimal.NewFromFloat(v.GetFloat64(cfgKeyTaxRate)),
		DefaultInstance: v.GetString(cfgKeyDefaultInstance),
		DestroyOnLogout: v.GetBool(cfgKeyDestroyOnLogout),
		Database: types.DatabaseConfig{
			Path:  v.GetString(cfgKeyDatabasePath),
			Table: v.GetString(cfgKeyDatabaseTable),
		},
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, "", err
	}
	return cfg, v.GetString(cfgKeyDataDir), nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
