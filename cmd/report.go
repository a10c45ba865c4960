package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendwise/date"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	html  string
	title string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full dashboard, or save it as HTML" }
func (*reportCmd) Usage() string {
	return `sws report [-title <title>] [-html <file>]

  Displays the balance, the spending breakdown, the last 30 days and every
  transaction. With -html the report is written as an HTML page instead.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.html, "html", "", "Write the report as an HTML page into this file.")
	f.StringVar(&p.title, "title", "SpendWise", "Title of the report.")
}

func (p *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := loadTransactions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	opts := renderOptions()
	opts.Title = p.title
	report := renderer.Report(txs, date.Today(), opts)

	if p.html == "" {
		printMarkdown(report)
		return subcommands.ExitSuccess
	}

	page, err := renderer.HTML(opts.Title, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(p.html, page, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", p.html, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Report written to %s\n", p.html)
	return subcommands.ExitSuccess
}
