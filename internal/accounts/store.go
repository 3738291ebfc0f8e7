package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hrbank-dev/hrbank/internal/model"
)

// Store owns the accounts file. It is a per-call view: every operation
// opens, works and closes; the on-disk file is the source of truth.
type Store struct {
	path string
}

// NewStore creates a Store bound to an accounts file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the accounts file into a Book. A missing file yields an
// empty Book. Malformed lines are dropped and, as a side effect, the
// file is rewritten to exactly the surviving records in their original
// relative order. The rewrite is unconditional and atomic.
func (s *Store) Load() (*Book, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening accounts file: %w", err)
	}

	accts, dropped, err := ReadAccounts(f)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("reading accounts file: %w", err)
	}

	book := NewBook()
	book.dropped = dropped
	for _, acct := range accts {
		book.Put(acct)
	}

	if err := s.writeAll(book.Accounts()); err != nil {
		return nil, fmt.Errorf("healing accounts file: %w", err)
	}
	return book, nil
}

// Append encodes one account and appends it to the accounts file,
// creating the file if needed. Number uniqueness is the caller's job.
func (s *Store) Append(acct model.Account) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening accounts file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalAccount(acct)); err != nil {
		return fmt.Errorf("appending account: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// RewriteAll overwrites the accounts file with the Book's contents,
// one record per account, in Book order.
func (s *Store) RewriteAll(book *Book) error {
	if err := s.writeAll(book.Accounts()); err != nil {
		return fmt.Errorf("rewriting accounts file: %w", err)
	}
	return nil
}

// writeAll replaces the accounts file via temp file + rename, so a
// crash mid-write never leaves a half-written store.
func (s *Store) writeAll(accts []model.Account) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".accounts-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := WriteAccounts(tmp, accts); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing accounts file: %w", err)
	}
	return nil
}

// Book is a transient in-memory view of the account store, keyed by
// account number with stable insertion order.
type Book struct {
	byNumber map[string]model.Account
	order    []string
	dropped  int
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{byNumber: make(map[string]model.Account)}
}

// Get returns an account by number.
func (b *Book) Get(number string) (model.Account, bool) {
	acct, ok := b.byNumber[number]
	return acct, ok
}

// Put inserts an account, or replaces it in place if the number is
// already present.
func (b *Book) Put(acct model.Account) {
	if _, ok := b.byNumber[acct.Number]; !ok {
		b.order = append(b.order, acct.Number)
	}
	b.byNumber[acct.Number] = acct
}

// Accounts returns all accounts in Book order.
func (b *Book) Accounts() []model.Account {
	accts := make([]model.Account, 0, len(b.order))
	for _, n := range b.order {
		accts = append(accts, b.byNumber[n])
	}
	return accts
}

// Len returns the number of accounts.
func (b *Book) Len() int {
	return len(b.order)
}

// Dropped returns how many malformed lines the last Load discarded.
func (b *Book) Dropped() int {
	return b.dropped
}
