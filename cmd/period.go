package cmd

import (
	"flag"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/date"
)

// periodFlags restrict a command to the transactions of one period.
type periodFlags struct {
	period string
	day    string
}

func (p *periodFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Only consider the period (day, week, month, quarter, year) containing -on.")
	f.StringVar(&p.day, "on", "", "Reference day for -p, YYYY-MM-DD (default today).")
}

// filter returns the transactions of the selected period, or txs when no
// period is selected.
func (p *periodFlags) filter(txs []spendwise.Transaction) ([]spendwise.Transaction, error) {
	if p.period == "" {
		return txs, nil
	}
	period, err := date.ParsePeriod(p.period)
	if err != nil {
		return nil, err
	}
	on := date.Today()
	if p.day != "" {
		if on, err = date.Parse(p.day); err != nil {
			return nil, err
		}
	}
	return spendwise.InRange(txs, date.NewRange(on, period)), nil
}
