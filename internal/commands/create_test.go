package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrbank-dev/hrbank/internal/accounts"
	"github.com/hrbank-dev/hrbank/internal/config"
	"github.com/hrbank-dev/hrbank/internal/id"
	"github.com/hrbank-dev/hrbank/internal/ledger"
	"github.com/hrbank-dev/hrbank/internal/model"
	"github.com/hrbank-dev/hrbank/internal/txlog"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testEnv wires an env over a temp dir with git auto-commit off.
func testEnv(t *testing.T) (*env, *accounts.Store, *txlog.Log) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default("Test Bank")
	cfg.Git.AutoCommit = false

	store := accounts.NewStore(filepath.Join(dir, cfg.Files.Accounts))
	txns := txlog.NewLog(filepath.Join(dir, cfg.Files.Transactions))

	return &env{
		dataDir: dir,
		cfg:     cfg,
		ledger:  ledger.NewService(store, txns),
		txns:    txns,
	}, store, txns
}

func TestRunCreate(t *testing.T) {
	e, store, _ := testEnv(t)

	// Invalid answers are re-prompted before the valid ones.
	input := strings.Join([]string{
		"R4vi",         // invalid name
		"Ravi",         // name
		"12-04-1990",   // invalid date format
		"1990-04-12",   // dob
		"12345",        // invalid phone
		"9876543210",   // phone
		"ravi@example.com",
		"123",          // invalid aadhar
		"123456789012", // aadhar
		"-5",           // negative deposit
		"100.0",        // initial deposit
		"yes",          // atm card
		"hunter2",      // password
	}, "\n") + "\n"

	var out bytes.Buffer
	err := runCreate(e, strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid name.")
	assert.Contains(t, out.String(), "Invalid date format.")
	assert.Contains(t, out.String(), "Invalid phone number.")
	assert.Contains(t, out.String(), "Invalid Aadhar number.")
	assert.Contains(t, out.String(), "Deposit must not be negative.")
	assert.Contains(t, out.String(), "Account created successfully!")
	assert.Contains(t, out.String(), "Your account number:")

	book, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 1, book.Len())

	acct := book.Accounts()[0]
	assert.True(t, id.Valid(acct.Number))
	assert.Equal(t, "Ravi", acct.Name)
	assert.Equal(t, "hunter2", acct.Password)
	assert.True(t, acct.Balance.Equal(dec("100")))
	assert.Equal(t, "1990-04-12", acct.DOB)
	assert.Equal(t, model.ATMYes, acct.ATM)
}

func TestRunCreate_UnderAge(t *testing.T) {
	e, store, _ := testEnv(t)

	input := "Ravi\n2010-01-01\n"

	var out bytes.Buffer
	err := runCreate(e, strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "You must be at least 18 years old")

	book, err := store.Load()
	require.NoError(t, err)
	assert.Zero(t, book.Len())
}

func TestRunCreate_ZeroDeposit(t *testing.T) {
	e, store, _ := testEnv(t)

	input := strings.Join([]string{
		"Meera",
		"1985-01-01",
		"9998887776",
		"meera@example.com",
		"210987654321",
		"0",
		"no",
		"secret",
	}, "\n") + "\n"

	var out bytes.Buffer
	err := runCreate(e, strings.NewReader(input), &out)
	require.NoError(t, err)

	book, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, 1, book.Len())

	acct := book.Accounts()[0]
	assert.True(t, acct.Balance.IsZero())
	assert.Equal(t, model.ATMNo, acct.ATM)
}
