package spendwise

import (
	"context"
	"strings"
)

// Categorizer guesses the category of a transaction from its description.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
}

// Rule maps a category to the keywords that reveal it.
type Rule struct {
	Category string
	Keywords []string
}

// DefaultRules are the built-in keyword rules, checked in order.
var DefaultRules = []Rule{
	{"Transport", []string{"bus", "train", "uber", "taxi", "metro", "fuel"}},
	{"Food", []string{"restaurant", "food", "cafe", "coffee", "pizza", "burger"}},
	{"Groceries", []string{"grocery", "groceries", "supermarket", "woolworths", "coles", "aldi"}},
	{"Entertainment", []string{"movie", "cinema", "netflix", "game", "concert"}},
	{"Utilities", []string{"electricity", "water", "internet", "gas", "rent"}},
}

// KeywordCategorizer returns the category of the first rule having a keyword
// contained in the description, ignoring case, or DefaultCategory.
type KeywordCategorizer struct {
	Rules []Rule // DefaultRules when nil
}

func (k KeywordCategorizer) Categorize(_ context.Context, description string) (string, error) {
	return k.category(description), nil
}

func (k KeywordCategorizer) category(description string) string {
	rules := k.Rules
	if rules == nil {
		rules = DefaultRules
	}
	lower := strings.ToLower(description)
	for _, r := range rules {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return r.Category
			}
		}
	}
	return DefaultCategory
}

// Recategorize returns txs where each transaction in the default category gets
// the category c finds for it. With all, every transaction is recategorized.
// It stops at the first error.
func Recategorize(ctx context.Context, c Categorizer, txs []Transaction, all bool) ([]Transaction, int, error) {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	changed := 0
	for i, t := range out {
		if !all && t.Category != "" && t.Category != DefaultCategory {
			continue
		}
		cat, err := c.Categorize(ctx, t.Description)
		if err != nil {
			return nil, changed, err
		}
		if cat != "" && cat != t.Category {
			out[i].Category = cat
			changed++
		}
	}
	return out, changed, nil
}
