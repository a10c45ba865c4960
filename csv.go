package spendwise

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/spendwise/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// this file contains the CSV import/export format.
//
// The format is deliberately simple so that it can be produced by hand or by a
// spreadsheet: a header line naming the columns, then one transaction per line.
// Export always writes the columns below, in that order. Import looks columns up
// by name, so foreign files may order them differently or omit some.

// CSVHeader lists the exported columns, in order.
var CSVHeader = []string{"id", "description", "amount", "type", "category", "date"}

const (
	DefaultDescription = "Imported"
	DefaultCategory    = "Other"
)

// EncodeCSV returns the CSV text for txs: the header line then one line per
// transaction, joined by "\n" with no trailing newline.
//
// Only the description is quoted. Other text fields are written verbatim, so
// they must not contain a comma or a newline.
func EncodeCSV(txs []Transaction) string {
	lines := make([]string, 0, len(txs)+1)
	lines = append(lines, strings.Join(CSVHeader, ","))
	for _, t := range txs {
		lines = append(lines, strings.Join([]string{
			t.ID,
			quote(t.Description),
			t.Amount.String(),
			string(t.Type),
			t.Category,
			t.Date,
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// ExportCSV writes EncodeCSV(txs) to w.
func ExportCSV(w io.Writer, txs []Transaction) error {
	if _, err := io.WriteString(w, EncodeCSV(txs)); err != nil {
		return fmt.Errorf("cannot write CSV format: %w", err)
	}
	return nil
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, `"`, `""`) + `"` }

// Decoder turns CSV text into transactions. Its zero value is ready to use.
//
// Decoding never fails: a missing or malformed field falls back to a default,
// and text without a header yields no transaction.
type Decoder struct {
	// NewID generates ids for rows without one. Defaults to random UUIDs.
	NewID func() string
	// Today is the date given to rows without one. Defaults to date.Today.
	Today func() date.Date
}

// DecodeCSV decodes text with the default Decoder.
func DecodeCSV(text string) []Transaction { return Decoder{}.Decode(text) }

// ImportCSV reads r entirely and decodes it. The only possible error is a read error.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV format: %w", err)
	}
	return DecodeCSV(string(data)), nil
}

// Decode returns one transaction per non-blank line after the header.
func (d Decoder) Decode(text string) []Transaction {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" { // also drops the '\r' of "\r\n"
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return []Transaction{}
	}

	cols := parseHeader(lines[0])
	txs := make([]Transaction, 0, len(lines)-1)
	for _, l := range lines[1:] {
		txs = append(txs, d.transaction(cols, splitCSVLine(l)))
	}
	return txs
}

// columns maps each known field to its position in a row, -1 when the header
// does not name it.
type columns struct {
	id, description, amount, typ, category, date int
}

func parseHeader(line string) columns {
	c := columns{-1, -1, -1, -1, -1, -1}
	for i, name := range strings.Split(line, ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "id":
			c.id = i
		case "description":
			c.description = i
		case "amount":
			c.amount = i
		case "type":
			c.typ = i
		case "category":
			c.category = i
		case "date":
			c.date = i
		}
	}
	return c
}

// cell returns the value at index i, "" when the column is absent or the row too short.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (d Decoder) transaction(c columns, row []string) Transaction {
	id := cell(row, c.id)
	if id == "" {
		id = d.newID()
	}
	day := cell(row, c.date)
	if day == "" {
		day = d.today().String()
	}
	return Transaction{
		ID:          id,
		Description: orDefault(cell(row, c.description), DefaultDescription),
		Amount:      parseAmount(cell(row, c.amount)),
		Type:        ParseType(cell(row, c.typ)),
		Category:    orDefault(cell(row, c.category), DefaultCategory),
		Date:        day,
	}
}

func (d Decoder) newID() string {
	if d.NewID != nil {
		return d.NewID()
	}
	return uuid.NewString()
}

func (d Decoder) today() date.Date {
	if d.Today != nil {
		return d.Today()
	}
	return date.Today()
}

// parseAmount returns the magnitude of s, or zero when s is not a number.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v.Abs()
}

// splitCSVLine splits line on commas that are outside double quotes.
//
// A '"' toggles the quoted state and is dropped, and inside quotes '""' stands
// for a literal '"'. A quoted description therefore comes out unquoted and
// unescaped. Fields are trimmed.
func splitCSVLine(line string) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}
