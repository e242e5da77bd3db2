package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dukaforge/cartbox/internal/paths"
	"github.com/dukaforge/cartbox/internal/session"
	"github.com/dukaforge/cartbox/internal/sqlite"
	"github.com/dukaforge/cartbox/pkg/cart"
	"github.com/dukaforge/cartbox/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagInstance  string
	flagJSON      bool
	flagVerbose   bool
)

// Command-scoped state, set up by PersistentPreRunE and released by
// PersistentPostRunE.
var (
	appConfig    types.Config
	sessionStore *session.FileStore
	cartStore    *sqlite.Store
	activeCart   *cart.Cart
)

var rootCmd = &cobra.Command{
	Use:     "cartbox",
	Short:   "Cartbox is a session-backed shopping cart",
	Version: Version,
	Long: `Cartbox keeps a shopping cart under a local data directory: line
items, detail charges (shipping, discounts, fees), and free-form
attributes, with tax-aware totals. Carts can be snapshotted to and
restored from a SQLite table.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openCart,
	PersistentPostRunE: closeCart,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.cartbox-db)")
	rootCmd.PersistentFlags().StringVar(&flagInstance, "instance", "", "cart instance name (default: from config, else \"default\")")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "print cart events to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(detailCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(attrCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(destroyCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// openCart loads config, opens the file-backed session and the SQLite
// stored-cart store, and builds the active cart.
func openCart(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, configDataDir, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig = cfg

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	sessionStore, err = session.NewFileStore(dataDir)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	dbPath := appConfig.Database.Path
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "carts.db")
	}
	cartStore, err = sqlite.Open(dbPath, appConfig.Database.Table)
	if err != nil {
		return fmt.Errorf("open cart store: %w", err)
	}

	var events types.Dispatcher = types.NopDispatcher{}
	if flagVerbose {
		events = types.DispatcherFunc(func(event string, payload any) {
			fmt.Fprintf(os.Stderr, "%s %v\n", event, payload)
		})
	}

	activeCart, err = cart.New(sessionStore, events, appConfig)
	if err != nil {
		return fmt.Errorf("create cart: %w", err)
	}
	activeCart.SetStore(cartStore)
	if flagInstance != "" {
		activeCart.SetInstance(flagInstance)
	}
	return nil
}

// closeCart releases the stored-cart database and surfaces any deferred
// session write failure.
func closeCart(cmd *cobra.Command, args []string) error {
	if sessionStore != nil {
		if err := sessionStore.Err(); err != nil {
			return fmt.Errorf("session write: %w", err)
		}
	}
	if cartStore != nil {
		return cartStore.Close()
	}
	return nil
}
