package txlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrbank-dev/hrbank/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tempLog(t *testing.T) *Log {
	t.Helper()
	return NewLog(filepath.Join(t.TempDir(), "transactions.txt"))
}

func TestAppend_Format(t *testing.T) {
	l := tempLog(t)

	require.NoError(t, l.Append(model.Transaction{
		AccountNumber: "12345678",
		Type:          model.TypeWithdrawal,
		Amount:        dec("40.0"),
		Date:          date(2026, 8, 28),
	}))

	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	assert.Equal(t, "12345678,Withdrawal,40,2026-08-28\n", string(data))
}

func TestAppend_OneLinePerEvent(t *testing.T) {
	l := tempLog(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Append(model.Transaction{
			AccountNumber: "12345678",
			Type:          model.TypeDeposit,
			Amount:        dec("10"),
			Date:          date(2026, 1, 1),
		}))
	}

	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
}

func TestRead_MissingFile(t *testing.T) {
	l := tempLog(t)

	txns, err := l.Read()
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestRead_SkipsMalformedWithoutHealing(t *testing.T) {
	l := tempLog(t)
	content := strings.Join([]string{
		"12345678,Deposit,100,2026-01-02",
		"not a transaction",
		"12345678,Withdrawal,40,2026-01-03",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(l.path, []byte(content), 0o644))

	txns, err := l.Read()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, model.TypeDeposit, txns[0].Type)
	assert.Equal(t, model.TypeWithdrawal, txns[1].Type)

	// The log is never rewritten: the malformed line stays.
	data, err := os.ReadFile(l.path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestForAccount(t *testing.T) {
	l := tempLog(t)

	require.NoError(t, l.Append(model.Transaction{
		AccountNumber: "12345678", Type: model.TypeDeposit, Amount: dec("10"), Date: date(2026, 1, 1),
	}))
	require.NoError(t, l.Append(model.Transaction{
		AccountNumber: "87654321", Type: model.TypeDeposit, Amount: dec("20"), Date: date(2026, 1, 2),
	}))
	require.NoError(t, l.Append(model.Transaction{
		AccountNumber: "12345678", Type: model.TypeWithdrawal, Amount: dec("5"), Date: date(2026, 1, 3),
	}))

	txns, err := l.ForAccount("12345678")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.True(t, txns[0].Amount.Equal(dec("10")))
	assert.True(t, txns[1].Amount.Equal(dec("5")))
}

func TestMarshalRoundTrip(t *testing.T) {
	want := model.Transaction{
		AccountNumber: "12345678",
		Type:          model.TypeDeposit,
		Amount:        dec("99.95"),
		Date:          date(2026, 8, 28),
	}

	got, err := UnmarshalTransaction(MarshalTransaction(want))
	require.NoError(t, err)
	assert.Equal(t, want.AccountNumber, got.AccountNumber)
	assert.Equal(t, want.Type, got.Type)
	assert.True(t, want.Amount.Equal(got.Amount))
	assert.True(t, want.Date.Equal(got.Date))
}
