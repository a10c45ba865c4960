package spendwise

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("transaction not found")
	ErrDuplicateID = errors.New("duplicate transaction id")
)

// Ledger is the ordered collection of transactions, newest first.
//
// A Ledger is not safe for concurrent use.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs, in that order.
func NewLedger(txs ...Transaction) *Ledger {
	return &Ledger{transactions: slices.Clone(txs)}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions, newest first.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
}

// Get returns the transaction with that id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

// Add puts tx at the top of the ledger and returns it. A transaction without
// id is given a new one.
func (l *Ledger) Add(tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if l.index(tx.ID) >= 0 {
		return tx, fmt.Errorf("cannot add %q: %w", tx.ID, ErrDuplicateID)
	}
	l.transactions = slices.Insert(l.transactions, 0, tx)
	return tx, nil
}

// Remove deletes the transaction with that id.
func (l *Ledger) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("cannot remove %q: %w", id, ErrNotFound)
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return nil
}

// Update replaces the transaction that has the same id as tx, keeping its position.
func (l *Ledger) Update(tx Transaction) error {
	i := l.index(tx.ID)
	if i < 0 {
		return fmt.Errorf("cannot update %q: %w", tx.ID, ErrNotFound)
	}
	l.transactions[i] = tx
	return nil
}

// Clear removes every transaction.
func (l *Ledger) Clear() { l.transactions = l.transactions[:0] }

// Import merges txs into the ledger.
//
// With replace, the ledger is cleared first. A transaction whose id is
// already known replaces the existing one in place, and the others are put on
// top in their file order. When txs repeats an id, the last row wins. It
// returns the number of added and updated transactions.
func (l *Ledger) Import(txs []Transaction, replace bool) (added, updated int) {
	if replace {
		l.transactions = nil
	}
	var fresh []Transaction
	pos := make(map[string]int) // position in fresh, a file repeating an id keeps the last one
	for _, tx := range txs {
		if i := l.index(tx.ID); i >= 0 {
			l.transactions[i] = tx
			updated++
			continue
		}
		if i, ok := pos[tx.ID]; ok {
			fresh[i] = tx
			continue
		}
		pos[tx.ID] = len(fresh)
		fresh = append(fresh, tx)
	}
	l.transactions = append(fresh, l.transactions...)
	return len(fresh), updated
}

// Filter returns the transactions for which keep is true, in ledger order.
func (l *Ledger) Filter(keep func(Transaction) bool) []Transaction {
	var out []Transaction
	for _, t := range l.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Search returns the transactions whose description contains query, ignoring case.
// An empty query matches everything.
func (l *Ledger) Search(query string) []Transaction {
	q := strings.ToLower(query)
	return l.Filter(func(t Transaction) bool {
		return strings.Contains(strings.ToLower(t.Description), q)
	})
}
