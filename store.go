package spendwise

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// Store persists the whole collection of transactions at once.
type Store interface {
	Load(ctx context.Context) ([]Transaction, error)
	Save(ctx context.Context, txs []Transaction) error
}

// MemoryStore keeps the transactions in memory. Its zero value is an empty store.
type MemoryStore struct {
	txs []Transaction
}

func (m *MemoryStore) Load(context.Context) ([]Transaction, error) { return slices.Clone(m.txs), nil }

func (m *MemoryStore) Save(_ context.Context, txs []Transaction) error {
	m.txs = slices.Clone(txs)
	return nil
}

// FileStore keeps the transactions in a JSONL file, newest first.
type FileStore struct {
	Path string
}

// Load reads the file. A file that does not exist yet is an empty ledger.
func (f FileStore) Load(context.Context) ([]Transaction, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", f.Path, err)
	}
	defer file.Close()

	txs, err := DecodeLedger(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", f.Path, err)
	}
	return txs, nil
}

// Save rewrites the file. It writes a temporary file first and renames it, so a
// failed save leaves the previous content untouched.
func (f FileStore) Save(_ context.Context, txs []Transaction) error {
	if f.Path == "" {
		return errors.New("cannot save ledger with an empty path")
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", f.Path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", f.Path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if err := EncodeLedger(tmp, txs); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing ledger file %q: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", f.Path, err)
	}
	return nil
}
