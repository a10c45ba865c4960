package spendwise

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Type tells whether a transaction brings money in or takes it out.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType is permissive: "income" in any case is Income, anything else is Expense.
func ParseType(s string) Type {
	if strings.ToLower(strings.TrimSpace(s)) == string(Income) {
		return Income
	}
	return Expense
}

func (t Type) String() string { return string(t) }

// UnmarshalJSON normalizes the type the same way ParseType does.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseType(s)
	return nil
}

// Transaction is a single ledger entry.
//
// Amount is always a magnitude, the direction is carried by Type. Date is kept
// as the ISO-8601 string it was recorded with.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        Type            `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

// Signed returns the amount with the sign implied by the type.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Income {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Equal compares every field, amounts by value (so 1.50 equals 1.5).
func (t Transaction) Equal(u Transaction) bool {
	return t.ID == u.ID &&
		t.Description == u.Description &&
		t.Amount.Equal(u.Amount) &&
		t.Type == u.Type &&
		t.Category == u.Category &&
		t.Date == u.Date
}

// MarshalJSON writes the canonical form, keys in column order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID).
		Append("description", t.Description).
		Append("amount", t.Amount).
		Append("type", t.Type).
		Append("category", t.Category).
		Append("date", t.Date)
	return w.MarshalJSON()
}
