package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/date"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

type dailyCmd struct {
	days int
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display income and expense day by day" }
func (*dailyCmd) Usage() string {
	return `sws daily [-n <days>] [-d <day>]

  Displays the income and expense of each day of a window ending on a given
  day. Days without activity are omitted.
`
}

func (p *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.days, "n", 30, "Number of days in the window.")
	f.StringVar(&p.date, "d", "", "Last day of the window, YYYY-MM-DD (default today).")
}

func (p *dailyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", p.days)
		return subcommands.ExitUsageError
	}
	end := date.Today()
	if p.date != "" {
		var err error
		if end, err = date.Parse(p.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	txs, err := loadTransactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Daily(spendwise.Daily(txs, date.LastDays(end, p.days)), renderOptions()))
	return subcommands.ExitSuccess
}
