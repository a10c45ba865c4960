package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	periodFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display total income, total expense and balance" }
func (*summaryCmd) Usage() string {
	return `sws summary [-p <period> [-on <day>]]

  Displays the balance of the ledger, with its total income and expense.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) { p.periodFlags.set(f) }

func (p *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := loadTransactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if txs, err = p.filter(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Summary(spendwise.Summarize(txs), renderOptions()))
	return subcommands.ExitSuccess
}

type breakdownCmd struct {
	periodFlags
	by string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display how the money is spent" }
func (*breakdownCmd) Usage() string {
	return `sws breakdown [-by category|description|type] [-p <period> [-on <day>]]

  Displays the share of each category of expenses, or of each description,
  or income against expense.
`
}

func (p *breakdownCmd) SetFlags(f *flag.FlagSet) {
	p.periodFlags.set(f)
	f.StringVar(&p.by, "by", "category", "Grouping (category, description, type).")
}

func (p *breakdownCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var (
		title string
		group func([]spendwise.Transaction) []spendwise.Slice
	)
	switch p.by {
	case "category":
		title, group = "Spending breakdown", spendwise.SpendingBreakdown
	case "description":
		title, group = "Breakdown by description", spendwise.DescriptionBreakdown
	case "type":
		title, group = "Spending overview", spendwise.IncomeExpense
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown grouping %q\n", p.by)
		return subcommands.ExitUsageError
	}

	txs, err := loadTransactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if txs, err = p.filter(txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.Breakdown(title, group(txs), renderOptions()))
	return subcommands.ExitSuccess
}
