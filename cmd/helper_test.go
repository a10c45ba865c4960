package cmd

import (
	"context"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/etnz/spendwise"
	"github.com/google/subcommands"
)

// createTempLedger writes txs into a new ledger file and returns its path.
func createTempLedger(t *testing.T, txs ...spendwise.Transaction) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_ledger.jsonl")
	if len(txs) == 0 {
		return path
	}
	if err := (spendwise.FileStore{Path: path}).Save(context.Background(), txs); err != nil {
		t.Fatalf("Failed to write temp ledger: %v", err)
	}
	return path
}

// readLedger returns the content of a ledger file.
func readLedger(t *testing.T, path string) []spendwise.Transaction {
	t.Helper()
	txs, err := spendwise.FileStore{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to read ledger: %v", err)
	}
	return txs
}

// setGlobals overrides the global flags for the duration of the test.
func setGlobals(t *testing.T, ledger, cur string) {
	t.Helper()
	oldLedger, oldCurrency := ledgerFile, currency
	ledgerFile, currency = &ledger, &cur
	t.Cleanup(func() { ledgerFile, currency = oldLedger, oldCurrency })
}

// captureStdout redirects command output to w for the duration of the test.
func captureStdout(t *testing.T, w io.Writer) {
	t.Helper()
	old := stdout
	stdout = w
	t.Cleanup(func() { stdout = old })
}

// run parses args as the command flags and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func ids(txs []spendwise.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.ID
	}
	return out
}
