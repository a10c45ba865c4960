// Package renderer turns ledgers and reports into markdown documents, and
// markdown documents into HTML.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/spendwise"
	"github.com/etnz/spendwise/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// barWidth is the width, in runes, of the longest bar of a breakdown.
const barWidth = 20

// Options control the rendering.
type Options struct {
	Currency string // ISO code used to format amounts.
	Title    string // Report title, "SpendWise" by default.
}

func (o Options) title() string {
	if o.Title == "" {
		return "SpendWise"
	}
	return o.Title
}

// Summary renders the balance card.
func Summary(s spendwise.Summary, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeSummary(doc, s, opts)
	return doc.String()
}

func writeSummary(doc *md.Markdown, s spendwise.Summary, opts Options) {
	doc.H2("Balance")
	doc.PlainText(fmt.Sprintf("**%s**", Money(s.Balance, opts.Currency)))
	doc.Table(md.TableSet{
		Header: []string{"Income", "Expense", "Transactions", "Last update"},
		Rows: [][]string{{
			Money(s.Income, opts.Currency),
			"-" + Money(s.Expense, opts.Currency),
			fmt.Sprint(s.Count),
			lastUpdate(s.LastUpdated),
		}},
	})
}

// lastUpdate formats an ISO date like "Aug 8, 2025", or returns it as is.
func lastUpdate(day string) string {
	d, err := date.Parse(day)
	if err != nil {
		return day
	}
	return d.Format("Jan 2, 2006")
}

// Breakdown renders chart slices as a table with proportional bars.
func Breakdown(title string, slices []spendwise.Slice, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeBreakdown(doc, title, slices, opts)
	return doc.String()
}

func writeBreakdown(doc *md.Markdown, title string, slices []spendwise.Slice, opts Options) {
	doc.H2(title)
	if len(slices) == 0 {
		doc.PlainText("_Nothing to show yet._")
		return
	}
	total, top := decimal.Zero, decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
		top = decimal.Max(top, s.Value)
	}
	rows := make([][]string, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, []string{s.Name, Money(s.Value, opts.Currency), share(s.Value, total), bar(s.Value, top)})
	}
	doc.Table(md.TableSet{Header: []string{"Name", "Amount", "Share", ""}, Rows: rows})
}

// share returns v as a percentage of total.
func share(v, total decimal.Decimal) string {
	if total.IsZero() {
		return "-"
	}
	return v.Mul(decimal.NewFromInt(100)).Div(total).StringFixed(1) + "%"
}

// bar draws v relative to top, at least one block for non zero values.
func bar(v, top decimal.Decimal) string {
	if top.IsZero() || v.IsZero() {
		return ""
	}
	n := int(v.Mul(decimal.NewFromInt(barWidth)).Div(top).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

// Transactions renders the list of transactions, with signed amounts.
func Transactions(txs []spendwise.Transaction, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeTransactions(doc, txs, opts)
	return doc.String()
}

func writeTransactions(doc *md.Markdown, txs []spendwise.Transaction, opts Options) {
	doc.H2("Transactions")
	if len(txs) == 0 {
		doc.PlainText("_No transactions yet._")
		return
	}
	rows := make([][]string, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, []string{
			t.Date,
			escape(t.Description),
			escape(t.Category),
			SignedMoney(t.Amount, opts.Currency, t.Type != spendwise.Income),
			t.ID,
		})
	}
	doc.Table(md.TableSet{Header: []string{"Date", "Description", "Category", "Amount", "ID"}, Rows: rows})
}

// escape protects user text from breaking the table layout.
func escape(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

// Daily renders the per day totals.
func Daily(days []spendwise.DailyTotal, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeDaily(doc, days, opts)
	return doc.String()
}

func writeDaily(doc *md.Markdown, days []spendwise.DailyTotal, opts Options) {
	if len(days) == 0 {
		doc.H2("Daily summary")
		return
	}
	doc.H2(fmt.Sprintf("%d-day summary", len(days)))
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		if d.Income.IsZero() && d.Expense.IsZero() {
			continue
		}
		rows = append(rows, []string{
			d.Day.Format("02 Jan"),
			Money(d.Income, opts.Currency),
			Money(d.Expense, opts.Currency),
			Money(d.Income.Sub(d.Expense), opts.Currency),
		})
	}
	if len(rows) == 0 {
		doc.PlainText("_No activity in this period._")
		return
	}
	doc.Table(md.TableSet{Header: []string{"Day", "Income", "Expense", "Net"}, Rows: rows})
}

// Report renders the full dashboard for txs: balance, spending breakdown,
// income versus expense, the last 30 days and the transaction list.
func Report(txs []spendwise.Transaction, today date.Date, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(opts.title())
	writeSummary(doc, spendwise.Summarize(txs), opts)
	writeBreakdown(doc, "Spending breakdown", spendwise.SpendingBreakdown(txs), opts)
	writeBreakdown(doc, "Spending overview", spendwise.IncomeExpense(txs), opts)
	writeDaily(doc, spendwise.Daily(txs, date.LastDays(today, 30)), opts)
	writeTransactions(doc, txs, opts)
	return doc.String()
}
