package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/spendwise"
	"github.com/google/subcommands"
)

type importCmd struct {
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `sws import [-replace] <file.csv>

  Reads transactions from a CSV file ("-" for stdin). Rows whose id is already
  in the ledger replace the existing transaction, the others are added at the
  top. With -replace the ledger becomes the file content.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.replace, "replace", false, "Replace the whole ledger with the file content.")
}

func (p *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one CSV file is required.")
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	var r io.Reader = os.Stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening CSV file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	txs, err := spendwise.ImportCSV(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	added, updated := ledger.Import(txs, p.replace)
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Imported %d transaction(s): %d added, %d updated\n", len(txs), added, updated)
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger as CSV" }
func (*exportCmd) Usage() string {
	return `sws export [-o <file.csv>]

  Writes the ledger as CSV, to stdout by default.
`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file path. Defaults to stdout.")
}

func (p *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := loadTransactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w := stdout
	if p.output != "" {
		file, err := os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := spendwise.ExportCSV(w, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	if p.output != "" {
		fmt.Fprintf(stdout, "Exported %d transaction(s) to %s\n", len(txs), p.output)
	}
	return subcommands.ExitSuccess
}
