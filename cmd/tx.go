package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// txFlags are the fields of a transaction that add and edit accept.
type txFlags struct {
	description string
	amount      string
	typ         string
	category    string
	date        string
}

func (p *txFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.description, "d", "", "Description of the transaction.")
	f.StringVar(&p.amount, "a", "", "Amount of the transaction, a positive number.")
	f.StringVar(&p.typ, "t", "expense", "Type of the transaction (income, expense).")
	f.StringVar(&p.category, "c", "", "Category. Guessed from the description when empty.")
	f.StringVar(&p.date, "date", "", "Day of the transaction, YYYY-MM-DD (default today).")
}

// apply copies into tx the fields named in set.
func (p *txFlags) apply(tx *spendwise.Transaction, set map[string]bool) error {
	if set["d"] {
		tx.Description = strings.TrimSpace(p.description)
	}
	if set["a"] {
		a, err := decimal.NewFromString(strings.TrimSpace(p.amount))
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", p.amount, err)
		}
		tx.Amount = a
	}
	if set["t"] {
		tx.Type = spendwise.Type(strings.ToLower(strings.TrimSpace(p.typ)))
	}
	if set["c"] {
		tx.Category = strings.TrimSpace(p.category)
	}
	if set["date"] {
		d, err := date.Parse(strings.TrimSpace(p.date))
		if err != nil {
			return err
		}
		tx.Date = d.String()
	}
	return nil
}

// visited returns the names of the flags set on the command line.
func visited(f *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

type addCmd struct {
	txFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction at the top of the ledger" }
func (*addCmd) Usage() string {
	return `sws add -d <description> -a <amount> [-t income|expense] [-c <category>] [-date <day>]

  Adds a transaction. Without -c, the category is guessed from the description.
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) { p.txFlags.set(f) }

func (p *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx := spendwise.Transaction{Type: spendwise.Expense, Date: date.Today().String()}
	set := visited(f)
	set["t"] = true // the default type applies
	if err := p.apply(&tx, set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if tx.Category == "" {
		tx.Category, _ = spendwise.KeywordCategorizer{}.Categorize(ctx, tx.Description)
	}
	if err := spendwise.Validate(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	tx, err = ledger.Add(tx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type editCmd struct {
	txFlags
	id string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change fields of a transaction" }
func (*editCmd) Usage() string {
	return `sws edit -id <id> [-d <description>] [-a <amount>] [-t income|expense] [-c <category>] [-date <day>]

  Replaces the given fields of an existing transaction. The transaction keeps
  its place in the ledger.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	p.txFlags.set(f)
	f.StringVar(&p.id, "id", "", "Id of the transaction to edit.")
}

func (p *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	tx, ok := ledger.Get(p.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %q: %v\n", p.id, spendwise.ErrNotFound)
		return subcommands.ExitFailure
	}
	if err := p.apply(&tx, visited(f)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := spendwise.Validate(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.Update(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Updated transaction %s\n", tx.ID)
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete transactions" }
func (*rmCmd) Usage() string {
	return `sws rm <id>...

  Deletes the transactions with the given ids. Nothing is deleted if one id
  is unknown.
`
}

func (*rmCmd) SetFlags(*flag.FlagSet) {}

func (*rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required.")
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	var errs []error
	for _, id := range f.Args() {
		errs = append(errs, ledger.Remove(id))
	}
	if err := errors.Join(errs...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted %d transaction(s)\n", f.NArg())
	return subcommands.ExitSuccess
}

type clearCmd struct{}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every transaction" }
func (*clearCmd) Usage() string {
	return `sws clear

  Deletes every transaction of the ledger.
`
}

func (*clearCmd) SetFlags(*flag.FlagSet) {}

func (*clearCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	n := ledger.Len()
	ledger.Clear()
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted %d transaction(s)\n", n)
	return subcommands.ExitSuccess
}

type sampleCmd struct {
	force bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "fill an empty ledger with sample transactions" }
func (*sampleCmd) Usage() string {
	return `sws sample [-f]

  Writes a few sample transactions into the ledger. The ledger must be empty
  unless -f is given, in which case its content is replaced.
`
}

func (p *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.force, "f", false, "Replace a non empty ledger.")
}

func (p *sampleCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	if ledger.Len() > 0 && !p.force {
		fmt.Fprintf(os.Stderr, "Error: ledger %q already has %d transaction(s), use -f to replace them\n", ledgerLocation(), ledger.Len())
		return subcommands.ExitFailure
	}
	ledger.Import(spendwise.SampleTransactions(), true)
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Wrote %d sample transactions\n", ledger.Len())
	return subcommands.ExitSuccess
}
