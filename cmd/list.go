package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	periodFlags
	query    string
	category string
	typ      string
	head     int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, newest first" }
func (*listCmd) Usage() string {
	return `sws list [-q <text>] [-c <category>] [-t income|expense] [-p <period> [-on <day>]] [-head <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	p.periodFlags.set(f)
	f.StringVar(&p.query, "q", "", "Only list transactions whose description contains this text, ignoring case.")
	f.StringVar(&p.category, "c", "", "Only list transactions of this category.")
	f.StringVar(&p.typ, "t", "", "Only list transactions of this type (income, expense).")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
}

func (p *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ := spendwise.Type(strings.ToLower(p.typ))
	if p.typ != "" && typ != spendwise.Income && typ != spendwise.Expense {
		fmt.Fprintf(os.Stderr, "Error: unknown type %q\n", p.typ)
		return subcommands.ExitUsageError
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	closeStore(store)

	transactions, err := p.filter(ledger.Search(p.query))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	transactions = slices.DeleteFunc(transactions, func(tx spendwise.Transaction) bool {
		if p.category != "" && !strings.EqualFold(tx.Category, p.category) {
			return true
		}
		return p.typ != "" && tx.Type != typ
	})

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}

	printMarkdown(renderer.Transactions(transactions, renderOptions()))
	return subcommands.ExitSuccess
}
