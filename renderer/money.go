package renderer

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// Money formats amount in currency, like "$1,234.50". Unknown currencies fall
// back to the plain amount with two decimals followed by the code, and so do
// amounts too large to count in minor units.
func Money(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		if currency == "" {
			return amount.StringFixed(2)
		}
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinor) || minor.LessThan(minMinor) {
		return amount.StringFixed(int32(cur.Fraction)) + " " + cur.Code
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

// SignedMoney is Money with an explicit sign, "-" for expenses.
func SignedMoney(amount decimal.Decimal, currency string, negative bool) string {
	if negative {
		return "-" + Money(amount, currency)
	}
	return "+" + Money(amount, currency)
}
