// Package spendwise keeps a personal ledger of income and expense
// transactions. It is local-first: the whole ledger is loaded in memory,
// changed, and saved back through a Store.
//
// The package provides:
//   - Transactions and the Ledger holding them, newest first.
//   - The CSV codec used to import and export ledgers. Encoding is strict and
//     decoding is permissive: missing or malformed values get a default
//     instead of failing the whole file.
//   - Reports computed from a list of transactions: balance, spending
//     breakdown and daily totals.
//   - Categorizers that guess a category from a description.
//   - Stores persisting the ledger, in a JSONL file or in memory. The pgstore
//     package keeps it in PostgreSQL.
//
// This package is the foundation of the `sws` command-line tool.
package spendwise
