// Package txlog maintains the append-only transaction log: one line per
// monetary event, never rewritten or compacted.
package txlog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrbank-dev/hrbank/internal/model"
)

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colNumber  = 0
	colType    = 1
	colAmount  = 2
	colDate    = 3
)

// Log is an append-only transaction log bound to one file path.
type Log struct {
	path string
}

// NewLog creates a Log bound to a transactions file path.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Append writes one transaction line, creating the file if needed.
// Prior content is never read or validated.
func (l *Log) Append(txn model.Transaction) error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(MarshalTransaction(txn)); err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all transactions in file order. A missing file yields
// nil. Lines that fail to decode are skipped; the log is never healed.
func (l *Log) Read() ([]model.Transaction, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transaction log: %w", err)
	}
	defer f.Close()

	return readTransactions(f)
}

// ForAccount returns the account's transactions in file order.
func (l *Log) ForAccount(number string) ([]model.Transaction, error) {
	all, err := l.Read()
	if err != nil {
		return nil, err
	}
	var txns []model.Transaction
	for _, txn := range all {
		if txn.AccountNumber == number {
			txns = append(txns, txn)
		}
	}
	return txns, nil
}

func readTransactions(r io.Reader) ([]model.Transaction, error) {
	var txns []model.Transaction

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		cr := csv.NewReader(strings.NewReader(sc.Text()))
		cr.FieldsPerRecord = numFields
		record, err := cr.Read()
		if err != nil {
			continue
		}
		txn, err := UnmarshalTransaction(record)
		if err != nil {
			continue
		}
		txns = append(txns, txn)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning transaction log: %w", err)
	}
	return txns, nil
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colNumber] = txn.AccountNumber
	row[colType] = string(txn.Type)
	row[colAmount] = txn.Amount.String()
	row[colDate] = txn.Date.Format(dateFormat)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	return model.Transaction{
		AccountNumber: record[colNumber],
		Type:          model.TransactionType(record[colType]),
		Amount:        amount,
		Date:          date,
	}, nil
}
