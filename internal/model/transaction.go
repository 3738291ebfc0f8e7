package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies monetary events in the transaction log.
type TransactionType string

const (
	TypeDeposit    TransactionType = "Deposit"
	TypeWithdrawal TransactionType = "Withdrawal"
)

// Transaction represents one row in transactions.txt. Rows are
// append-only: never mutated or deleted once written.
type Transaction struct {
	AccountNumber string
	Type          TransactionType
	Amount        decimal.Decimal // always positive
	Date          time.Time       // day granularity, no time-of-day
}
