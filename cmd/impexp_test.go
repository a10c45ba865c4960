package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/spendwise"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestImportCmdMerge(t *testing.T) {
	ledger := createTempLedger(t, spendwise.SampleTransactions()...)
	setGlobals(t, ledger, "AUD")
	captureStdout(t, io.Discard)

	csv := writeFile(t, "in.csv", "date,type,id,amount,category,description\r\n"+
		"2025-08-09,expense,6,12.5,Food,\"Coffee, large\"\r\n"+
		"2025-08-01,expense,2,125,Food,Groceries\r\n"+
		"\r\n")

	if status := run(t, &importCmd{}, csv); status != subcommands.ExitSuccess {
		t.Fatalf("import returned %v, want ExitSuccess", status)
	}

	got := readLedger(t, ledger)
	if diff := cmp.Diff([]string{"6", "1", "2", "3", "4", "5"}, ids(got)); diff != "" {
		t.Errorf("import order mismatch (-want +got):\n%s", diff)
	}
	if got[0].Description != "Coffee, large" {
		t.Errorf("imported description = %q, want %q", got[0].Description, "Coffee, large")
	}
	if got[2].Amount.String() != "125" {
		t.Errorf("updated amount = %s, want 125", got[2].Amount)
	}
}

func TestImportCmdReplace(t *testing.T) {
	ledger := createTempLedger(t, spendwise.SampleTransactions()...)
	setGlobals(t, ledger, "AUD")
	captureStdout(t, io.Discard)

	csv := writeFile(t, "in.csv", "id,description,amount,type,category,date\nx,Rent,900,expense,Housing,2025-08-01")
	if status := run(t, &importCmd{}, "-replace", csv); status != subcommands.ExitSuccess {
		t.Fatalf("import returned %v, want ExitSuccess", status)
	}
	if diff := cmp.Diff([]string{"x"}, ids(readLedger(t, ledger))); diff != "" {
		t.Errorf("import -replace mismatch (-want +got):\n%s", diff)
	}
}

func TestImportCmdErrors(t *testing.T) {
	ledger := createTempLedger(t)
	setGlobals(t, ledger, "AUD")
	captureStdout(t, io.Discard)

	if status := run(t, &importCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("import without file returned %v, want ExitUsageError", status)
	}
	if status := run(t, &importCmd{}, filepath.Join(t.TempDir(), "missing.csv")); status != subcommands.ExitFailure {
		t.Errorf("import of a missing file returned %v, want ExitFailure", status)
	}
}

func TestExportCmd(t *testing.T) {
	sample := spendwise.SampleTransactions()
	sample[4].Description = `Bob's "Diner"`
	ledger := createTempLedger(t, sample...)
	setGlobals(t, ledger, "AUD")

	var out bytes.Buffer
	captureStdout(t, &out)
	if status := run(t, &exportCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("export returned %v, want ExitSuccess", status)
	}
	want := `id,description,amount,type,category,date
1,"Salary",3500,income,Salary,2025-07-28
2,"Groceries",120,expense,Food,2025-08-01
3,"Internet bill",60,expense,Utilities,2025-08-05
4,"Freelance",400,income,Freelance,2025-08-07
5,"Bob's ""Diner""",45,expense,Entertainment,2025-08-08`
	if got := out.String(); got != want {
		t.Errorf("export mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	// the exported file imports back into the same ledger.
	file := filepath.Join(t.TempDir(), "out.csv")
	if status := run(t, &exportCmd{}, "-o", file); status != subcommands.ExitSuccess {
		t.Fatalf("export -o returned %v, want ExitSuccess", status)
	}
	other := createTempLedger(t)
	setGlobals(t, other, "AUD")
	if status := run(t, &importCmd{}, file); status != subcommands.ExitSuccess {
		t.Fatalf("import returned %v, want ExitSuccess", status)
	}
	got := readLedger(t, other)
	if len(got) != len(sample) {
		t.Fatalf("round trip returned %d transactions, want %d", len(got), len(sample))
	}
	for i := range sample {
		if !got[i].Equal(sample[i]) {
			t.Errorf("transaction %d = %+v, want %+v", i, got[i], sample[i])
		}
	}
}
