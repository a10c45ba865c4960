package spendwise

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/spendwise/date"
)

var ErrInvalid = errors.New("invalid transaction")

// Validate applies the rules for transactions entered by hand: a description,
// a positive amount, a known type and a valid date. The id and category are
// written unquoted in CSV, so they cannot hold a comma or a line break, and
// the description cannot hold a line break either. Imported transactions are
// not validated, the CSV decoder already normalizes them.
func Validate(tx Transaction) error {
	var errs []error
	if strings.TrimSpace(tx.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if strings.ContainsAny(tx.Description, "\r\n") {
		errs = append(errs, errors.New("description cannot contain a line break"))
	}
	if strings.ContainsAny(tx.ID, ",\r\n") {
		errs = append(errs, fmt.Errorf("id cannot contain a comma or a line break, got %q", tx.ID))
	}
	if strings.ContainsAny(tx.Category, ",\r\n") {
		errs = append(errs, fmt.Errorf("category cannot contain a comma or a line break, got %q", tx.Category))
	}
	if !tx.Amount.IsPositive() {
		errs = append(errs, fmt.Errorf("amount must be positive, got %s", tx.Amount))
	}
	if tx.Type != Income && tx.Type != Expense {
		errs = append(errs, fmt.Errorf("type must be %q or %q, got %q", Income, Expense, tx.Type))
	}
	if _, err := date.Parse(tx.Date); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
