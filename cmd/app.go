// Package cmd implements the sws command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/pgstore"
	"github.com/etnz/spendwise/renderer"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"transactions", []subcommands.Command{&addCmd{}, &editCmd{}, &rmCmd{}, &clearCmd{}, &sampleCmd{}}},
	{"reports", []subcommands.Command{&listCmd{}, &summaryCmd{}, &breakdownCmd{}, &dailyCmd{}, &reportCmd{}, &queryCmd{}}},
	{"data", []subcommands.Command{&importCmd{}, &exportCmd{}, &categoriseCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const defaultLedgerFile = "transactions.jsonl"
const defaultCurrency = "AUD"

var ledgerFile = flag.String("ledger", "", "Ledger location, a JSONL file or a postgres:// URL (default $"+EnvLedgerFile+" or "+defaultLedgerFile+")")
var currency = flag.String("currency", "", "Currency code used to display amounts (default $"+EnvCurrency+" or "+defaultCurrency+")")

// Verbose turns on log messages.
var Verbose = flag.Bool("v", false, "Print log messages (default $"+EnvVerbose+")")

// stdout is where commands print their result.
var stdout io.Writer = os.Stdout

// env returns the flag value, or the environment variable, or def. Flags
// cannot take their defaults from the environment directly because the .env
// file is loaded after package initialization.
func env(flagValue, name, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func ledgerLocation() string { return env(*ledgerFile, EnvLedgerFile, defaultLedgerFile) }

func displayCurrency() string {
	return strings.ToUpper(env(*currency, EnvCurrency, defaultCurrency))
}

// SetupLogging discards log messages unless -v or $SWS_VERBOSE is set.
func SetupLogging() {
	verbose := *Verbose
	if !verbose {
		verbose, _ = strconv.ParseBool(os.Getenv(EnvVerbose))
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}
}

func renderOptions() renderer.Options { return renderer.Options{Currency: displayCurrency()} }

// OpenStore returns the store for a ledger location: a PostgreSQL table for
// postgres:// URLs, a JSONL file otherwise.
func OpenStore(ctx context.Context, location string) (spendwise.Store, error) {
	if strings.HasPrefix(location, "postgres://") || strings.HasPrefix(location, "postgresql://") {
		log.Printf("using postgres ledger")
		s, err := pgstore.Open(ctx, location)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	log.Printf("using ledger file %q", location)
	return spendwise.FileStore{Path: location}, nil
}

// closeStore releases the store resources, if any.
func closeStore(s spendwise.Store) {
	if c, ok := s.(interface{ Close() }); ok {
		c.Close()
	}
}

// openLedger opens the app store and loads the ledger from it.
// Callers must closeStore the returned store.
func openLedger(ctx context.Context) (*spendwise.Ledger, spendwise.Store, error) {
	location := ledgerLocation()
	store, err := OpenStore(ctx, location)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open ledger %q: %w", location, err)
	}
	txs, err := store.Load(ctx)
	if err != nil {
		closeStore(store)
		return nil, nil, fmt.Errorf("cannot load ledger %q: %w", location, err)
	}
	log.Printf("loaded %d transactions", len(txs))
	return spendwise.NewLedger(txs...), store, nil
}

// saveLedger writes the ledger back into the store.
func saveLedger(ctx context.Context, store spendwise.Store, l *spendwise.Ledger) error {
	if err := store.Save(ctx, l.Transactions()); err != nil {
		return fmt.Errorf("cannot save ledger %q: %w", ledgerLocation(), err)
	}
	log.Printf("saved %d transactions", l.Len())
	return nil
}

// loadTransactions is openLedger for read-only commands.
func loadTransactions(ctx context.Context) ([]spendwise.Transaction, error) {
	l, store, err := openLedger(ctx)
	if err != nil {
		return nil, err
	}
	closeStore(store)
	return l.Transactions(), nil
}

// printMarkdown renders md for the terminal when stdout is one, and prints it
// as is otherwise.
func printMarkdown(md string) {
	if f, ok := stdout.(*os.File); !ok || !isTerminal(f) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot create markdown renderer: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
