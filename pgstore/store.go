// Package pgstore keeps a ledger in a PostgreSQL table.
package pgstore

import (
	"context"
	"fmt"

	"github.com/etnz/spendwise"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// DefaultTable is the table used when none is given.
const DefaultTable = "spendwise_transactions"

// Store is a spendwise.Store backed by a single table. The position column
// keeps the ledger order.
type Store struct {
	pool  *pgxpool.Pool
	table pgx.Identifier
}

var _ spendwise.Store = (*Store)(nil)

// Open connects to the database at url and creates the table if needed.
func Open(ctx context.Context, url string) (*Store, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}
	s := &Store{pool: pool, table: pgx.Identifier{DefaultTable}}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the connections.
func (s *Store) Close() { s.pool.Close() }

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+s.table.Sanitize()+` (
		position    integer PRIMARY KEY,
		id          text    NOT NULL UNIQUE,
		description text    NOT NULL,
		amount      numeric NOT NULL,
		type        text    NOT NULL,
		category    text    NOT NULL,
		date        text    NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("cannot create table %s: %w", s.table.Sanitize(), err)
	}
	return nil
}

// Load returns every transaction, in ledger order.
func (s *Store) Load(ctx context.Context) ([]spendwise.Transaction, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, description, amount::text, type, category, date FROM `+s.table.Sanitize()+` ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions: %w", err)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (spendwise.Transaction, error) {
		var (
			tx     spendwise.Transaction
			amount string
			typ    string
		)
		if err := row.Scan(&tx.ID, &tx.Description, &amount, &typ, &tx.Category, &tx.Date); err != nil {
			return tx, err
		}
		a, err := decimal.NewFromString(amount)
		if err != nil {
			return tx, fmt.Errorf("transaction %q has an invalid amount %q: %w", tx.ID, amount, err)
		}
		tx.Amount = a
		tx.Type = spendwise.ParseType(typ)
		return tx, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot load transactions: %w", err)
	}
	if txs == nil {
		txs = []spendwise.Transaction{}
	}
	return txs, nil
}

// Save replaces the table content with txs, in a single database transaction.
func (s *Store) Save(ctx context.Context, txs []spendwise.Transaction) error {
	dbtx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("cannot save transactions: %w", err)
	}
	defer dbtx.Rollback(ctx) // no-op after commit

	if _, err := dbtx.Exec(ctx, `DELETE FROM `+s.table.Sanitize()); err != nil {
		return fmt.Errorf("cannot save transactions: %w", err)
	}
	insert := `INSERT INTO ` + s.table.Sanitize() + ` (position, id, description, amount, type, category, date) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	batch := &pgx.Batch{}
	for i, t := range txs {
		// amount goes as text so that postgres parses the exact decimal.
		batch.Queue(insert, i, t.ID, t.Description, t.Amount.String(), string(t.Type), t.Category, t.Date)
	}
	if err := dbtx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("cannot save transactions: %w", err)
	}
	if err := dbtx.Commit(ctx); err != nil {
		return fmt.Errorf("cannot save transactions: %w", err)
	}
	return nil
}
