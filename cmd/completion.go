package cmd

import (
	"flag"

	"github.com/etnz/spendwise/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// argPredictors predicts positional arguments, by command name.
var argPredictors = map[string]complete.Predictor{
	"import": predict.Files("*.csv"),
	"topic":  complete.PredictFunc(predictTopics),
}

// flagPredictors predicts flag values, by command and flag name.
var flagPredictors = map[string]map[string]complete.Predictor{
	"add":       {"t": types},
	"edit":      {"t": types},
	"list":      {"t": types, "p": periods},
	"summary":   {"p": periods},
	"breakdown": {"by": predict.Set{"category", "description", "type"}, "p": periods},
	"export":    {"o": predict.Files("*.csv")},
	"report":    {"html": predict.Files("*.html")},
}

var (
	types   = predict.Set{"income", "expense"}
	periods = predict.Set{"day", "week", "month", "quarter", "year"}
)

func predictTopics(string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme")
}

// Completion describes the sws command line for shell completion, using the
// same flags as the registered commands. global are the top level flags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagSetPredictors(global, nil),
	}
	for _, g := range groups {
		for _, c := range g.commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{
				Flags: flagSetPredictors(f, flagPredictors[c.Name()]),
				Args:  argPredictors[c.Name()],
			}
		}
	}
	root.Sub["help"] = &complete.Command{}
	return root
}

// flagSetPredictors returns a predictor for each flag of f. Boolean flags take
// no value, other flags take anything unless known says otherwise.
func flagSetPredictors(f *flag.FlagSet, known map[string]complete.Predictor) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := known[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
