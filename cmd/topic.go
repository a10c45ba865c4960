package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/spendwise/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the sws manual" }
func (*topicCmd) Usage() string {
	return `sws topic [-l] [<topic>...]

  Prints the manual pages named by <topic>, "*" for all of them. Without a
  topic it prints the introduction. Use -l to list the topic names.
`
}

func (p *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.list, "l", false, "List the available topics.")
}

func (p *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.list {
		names, err := docs.GetAllTopics()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, strings.Join(names, "\n"))
		return subcommands.ExitSuccess
	}

	names := f.Args()
	if len(names) == 0 {
		names = []string{"readme"}
	}
	for i, name := range names {
		names[i] = strings.ToLower(strings.TrimSuffix(name, ".md"))
	}
	doc, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sws topic -l' for the list of topics.")
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
