package spendwise

import (
	"github.com/etnz/spendwise/date"
	"github.com/shopspring/decimal"
)

// Summary holds the totals shown on the balance card.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // Income - Expense
	Count   int
	// LastUpdated is the date of the newest transaction, or today when there is none.
	LastUpdated string
}

// Summarize totals txs. txs are expected newest first, as a Ledger holds them.
func Summarize(txs []Transaction) Summary {
	s := Summary{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero, Count: len(txs)}
	for _, t := range txs {
		switch t.Type {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		default:
			s.Expense = s.Expense.Add(t.Amount)
		}
		s.Balance = s.Balance.Add(t.Signed())
	}
	if len(txs) > 0 {
		s.LastUpdated = txs[0].Date
	} else {
		s.LastUpdated = date.Today().String()
	}
	return s
}

// Slice is one named value of a chart, a pie slice or a bar.
type Slice struct {
	Name  string
	Value decimal.Decimal
}

// groupBy sums amounts by key, keeping the order in which keys are first seen.
func groupBy(txs []Transaction, key func(Transaction) string) []Slice {
	var out []Slice
	index := make(map[string]int)
	for _, t := range txs {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Slice{Name: k, Value: decimal.Zero})
		}
		out[i].Value = out[i].Value.Add(t.Amount)
	}
	return out
}

// SpendingBreakdown sums expenses by category.
func SpendingBreakdown(txs []Transaction) []Slice {
	var expenses []Transaction
	for _, t := range txs {
		if t.Type != Income {
			expenses = append(expenses, t)
		}
	}
	return groupBy(expenses, func(t Transaction) string { return t.Category })
}

// DescriptionBreakdown sums every transaction by description.
func DescriptionBreakdown(txs []Transaction) []Slice {
	return groupBy(txs, func(t Transaction) string { return t.Description })
}

// IncomeExpense returns the two bars of the overview chart.
func IncomeExpense(txs []Transaction) []Slice {
	s := Summarize(txs)
	return []Slice{{Name: "Income", Value: s.Income}, {Name: "Expense", Value: s.Expense}}
}

// DailyTotal is the income and expense of a single day.
type DailyTotal struct {
	Day     date.Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Daily returns one total per day of r, in chronological order. Transactions
// whose date cannot be parsed are ignored.
func Daily(txs []Transaction, r date.Range) []DailyTotal {
	var out []DailyTotal
	index := make(map[date.Date]int)
	for d := range r.Days() {
		index[d] = len(out)
		out = append(out, DailyTotal{Day: d, Income: decimal.Zero, Expense: decimal.Zero})
	}
	for _, t := range txs {
		day, err := date.Parse(t.Date)
		if err != nil {
			continue
		}
		i, ok := index[day]
		if !ok {
			continue
		}
		if t.Type == Income {
			out[i].Income = out[i].Income.Add(t.Amount)
		} else {
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}
	return out
}

// InRange returns the transactions dated within r. Transactions whose date
// cannot be parsed are left out.
func InRange(txs []Transaction, r date.Range) []Transaction {
	var out []Transaction
	for _, t := range txs {
		if day, err := date.Parse(t.Date); err == nil && r.Contains(day) {
			out = append(out, t)
		}
	}
	return out
}
