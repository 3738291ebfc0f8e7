package ledger

import "errors"

// Domain errors. ErrBadAmount, ErrBadDeposit and ErrInsufficient are
// retriable: the caller re-prompts rather than aborting.
var (
	// ErrAuthFailed deliberately does not distinguish an unknown
	// account number from a wrong password.
	ErrAuthFailed = errors.New("invalid account number or password")

	ErrBadAmount    = errors.New("amount must be greater than zero")
	ErrBadDeposit   = errors.New("initial deposit must not be negative")
	ErrInsufficient = errors.New("insufficient balance")
	ErrNotFound     = errors.New("account not found")
)
