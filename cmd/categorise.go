package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/assist"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

type categoriseCmd struct {
	ai     bool
	model  string
	all    bool
	dryRun bool
}

func (*categoriseCmd) Name() string     { return "categorise" }
func (*categoriseCmd) Synopsis() string { return "guess the category of uncategorised transactions" }
func (*categoriseCmd) Usage() string {
	return `sws categorise [-ai [-model <name>]] [-all] [-n]

  Guesses a category for every transaction filed under "Other", from its
  description. Keyword rules are used unless -ai is given, in which case a
  Gemini model is asked (the key is read from $GEMINI_API_KEY).
`
}

func (p *categoriseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.ai, "ai", false, "Ask a Gemini model instead of using keyword rules.")
	f.StringVar(&p.model, "model", assist.DefaultModel, "Gemini model used with -ai.")
	f.BoolVar(&p.all, "all", false, "Categorise every transaction, not only the ones filed under \"Other\".")
	f.BoolVar(&p.dryRun, "n", false, "Print the result without saving it.")
}

func (p *categoriseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var categorizer spendwise.Categorizer = spendwise.KeywordCategorizer{}
	if p.ai {
		key := os.Getenv(EnvGeminiAPIKey)
		if key == "" {
			fmt.Fprintf(os.Stderr, "Error: $%s is not set\n", EnvGeminiAPIKey)
			return subcommands.ExitFailure
		}
		g, err := assist.NewGemini(ctx, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
			return subcommands.ExitFailure
		}
		g.Model = p.model
		categorizer = g
	}

	ledger, store, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore(store)

	txs, changed, err := spendwise.Recategorize(ctx, categorizer, ledger.Transactions(), p.all)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error categorising transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.dryRun {
		printMarkdown(renderer.Transactions(txs, renderOptions()))
		fmt.Fprintf(stdout, "%d transaction(s) would change\n", changed)
		return subcommands.ExitSuccess
	}
	if changed == 0 {
		fmt.Fprintln(stdout, "No transaction changed")
		return subcommands.ExitSuccess
	}
	ledger.Import(txs, true)
	if err := saveLedger(ctx, store, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Categorised %d transaction(s)\n", changed)
	return subcommands.ExitSuccess
}
