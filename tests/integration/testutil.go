// Package integration provides end-to-end tests for cartbox: library
// flows over the file session store and the SQLite cart store, and CLI
// tests against the built binary.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cartbox/internal/session"
	"github.com/dukaforge/cartbox/pkg/cart"
	"github.com/dukaforge/cartbox/pkg/sqlite"
	"github.com/dukaforge/cartbox/pkg/types"
)

var (
	// cartboxBin is the path to the built cartbox binary.
	cartboxBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// newFileCart creates a cart over a file session store and a SQLite cart
// store, both rooted in a fresh temp directory. Returns the cart and the
// directory so a second cart can be opened over the same state.
func newFileCart(t *testing.T, dir string) *cart.Cart {
	t.Helper()

	sessions, err := session.NewFileStore(filepath.Join(dir, "sessions"))
	require.NoError(t, err)

	store, err := sqlite.Open(filepath.Join(dir, "carts.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	c, err := cart.New(sessions, nil, types.Config{TaxRate: decimal.NewFromFloat(0.06)})
	require.NoError(t, err)
	c.SetStore(store)
	return c
}

// dec parses a decimal literal or fails the test.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// TestEnv provides an isolated CLI environment with its own config and
// data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build cartbox: %v", buildErr)
	}
	if cartboxBin == "" {
		t.Fatal("cartbox binary not built (cartboxBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "tax_rate: 0.06\ndata_dir: " + dataDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a cartbox command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCartbox executes the cartbox CLI with the given arguments.
func (e *TestEnv) RunCartbox(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(cartboxBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run cartbox: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunCartbox executes the cartbox CLI and fails the test on a
// non-zero exit.
func (e *TestEnv) MustRunCartbox(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunCartbox(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("cartbox %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Line mirrors the line item JSON shape for CLI output parsing.
type Line struct {
	RowID    string `json:"row_id"`
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}
