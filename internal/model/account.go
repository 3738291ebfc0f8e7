package model

import "github.com/shopspring/decimal"

// ATMFlag is the stored YES/NO marker for whether an ATM card was issued.
type ATMFlag string

const (
	ATMYes ATMFlag = "YES"
	ATMNo  ATMFlag = "NO"
)

// ATMFlagFromBool converts a yes/no answer to its stored form.
func ATMFlagFromBool(b bool) ATMFlag {
	if b {
		return ATMYes
	}
	return ATMNo
}

// Account represents one row in accounts.txt.
type Account struct {
	Number   string // 8-digit numeric string, unique
	Name     string
	Password string // stored in clear text
	Balance  decimal.Decimal
	DOB      string // ISO date, YYYY-MM-DD
	Phone    string // 10 digits
	Email    string
	Aadhar   string // 12 digits
	ATM      ATMFlag
}
