package accounts

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hrbank-dev/hrbank/internal/model"
)

const (
	numFields  = 9
	colNumber  = 0
	colName    = 1
	colPass    = 2
	colBalance = 3
	colDOB     = 4
	colPhone   = 5
	colEmail   = 6
	colAadhar  = 7
	colATM     = 8
)

// ReadAccounts reads accounts from r, one record per line, dropping any
// line that fails to decode. It returns the surviving accounts in file
// order along with the number of dropped lines.
func ReadAccounts(r io.Reader) ([]model.Account, int, error) {
	var (
		accts   []model.Account
		dropped int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		acct, err := DecodeLine(sc.Text())
		if err != nil {
			dropped++
			continue
		}
		accts = append(accts, acct)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("scanning accounts file: %w", err)
	}
	return accts, dropped, nil
}

// WriteAccounts writes accounts to w, one record per line. There is no
// header row.
func WriteAccounts(w io.Writer, accts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, acct := range accts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	return cw.Error()
}

// DecodeLine decodes a single record line into an Account.
func DecodeLine(line string) (model.Account, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.FieldsPerRecord = numFields

	record, err := cr.Read()
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing record: %w", err)
	}
	return UnmarshalAccount(record)
}

// MarshalAccount converts an Account to a CSV row. The balance uses
// decimal's default string conversion, so the number of decimal digits
// persisted can vary.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = acct.Number
	row[colName] = acct.Name
	row[colPass] = acct.Password
	row[colBalance] = acct.Balance.String()
	row[colDOB] = acct.DOB
	row[colPhone] = acct.Phone
	row[colEmail] = acct.Email
	row[colAadhar] = acct.Aadhar
	row[colATM] = string(acct.ATM)
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	balance, err := decimal.NewFromString(record[colBalance])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	return model.Account{
		Number:   record[colNumber],
		Name:     record[colName],
		Password: record[colPass],
		Balance:  balance,
		DOB:      record[colDOB],
		Phone:    record[colPhone],
		Email:    record[colEmail],
		Aadhar:   record[colAadhar],
		ATM:      model.ATMFlag(record[colATM]),
	}, nil
}
