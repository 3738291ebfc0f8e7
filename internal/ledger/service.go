// Package ledger implements authentication and balance mutations over
// an account store and a transaction log.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrbank-dev/hrbank/internal/accounts"
	"github.com/hrbank-dev/hrbank/internal/id"
	"github.com/hrbank-dev/hrbank/internal/model"
)

// AccountStore is the persistence surface the ledger mutates.
type AccountStore interface {
	Load() (*accounts.Book, error)
	Append(model.Account) error
	RewriteAll(*accounts.Book) error
}

// TransactionLog records monetary events.
type TransactionLog interface {
	Append(model.Transaction) error
}

// Service provides the core banking operations. The mutex serializes
// every load-mutate-rewrite sequence; the store reloads from disk on
// each call, so the file stays the source of truth between operations.
type Service struct {
	mu    sync.Mutex
	store AccountStore
	log   TransactionLog

	now       func() time.Time
	newNumber func() string
}

// NewService creates a ledger Service over a store and a transaction log.
func NewService(store AccountStore, log TransactionLog) *Service {
	return &Service{
		store:     store,
		log:       log,
		now:       time.Now,
		newNumber: id.NewAccountNumber,
	}
}

// CreateParams holds the already-validated fields for a new account.
type CreateParams struct {
	Name           string
	Password       string
	InitialDeposit decimal.Decimal
	DOB            string
	Phone          string
	Email          string
	Aadhar         string
	ATMCard        bool
}

// CreateAccount generates a fresh account number, composes the account
// and appends it to the store. Numbers colliding with an existing
// account are redrawn.
func (s *Service) CreateAccount(params CreateParams) (model.Account, error) {
	if params.InitialDeposit.IsNegative() {
		return model.Account{}, ErrBadDeposit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.Load()
	if err != nil {
		return model.Account{}, fmt.Errorf("loading accounts: %w", err)
	}

	number := s.newNumber()
	for {
		if _, taken := book.Get(number); !taken {
			break
		}
		number = s.newNumber()
	}

	acct := model.Account{
		Number:   number,
		Name:     params.Name,
		Password: params.Password,
		Balance:  params.InitialDeposit,
		DOB:      params.DOB,
		Phone:    params.Phone,
		Email:    params.Email,
		Aadhar:   params.Aadhar,
		ATM:      model.ATMFlagFromBool(params.ATMCard),
	}
	if err := s.store.Append(acct); err != nil {
		return model.Account{}, fmt.Errorf("saving account: %w", err)
	}
	return acct, nil
}

// Authenticate loads the store and checks the password with an exact
// plain-text comparison. Unknown number and wrong password both yield
// the same ErrAuthFailed.
func (s *Service) Authenticate(number, password string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.Load()
	if err != nil {
		return model.Account{}, fmt.Errorf("loading accounts: %w", err)
	}

	acct, ok := book.Get(number)
	if !ok || acct.Password != password {
		return model.Account{}, ErrAuthFailed
	}
	return acct, nil
}

// Deposit adds amount to the account's balance, rewrites the store and
// logs a Deposit transaction. Returns the new balance.
func (s *Service) Deposit(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrBadAmount
	}
	return s.adjust(number, amount, model.TypeDeposit)
}

// Withdraw subtracts amount from the account's balance, rewrites the
// store and logs a Withdrawal transaction. Returns the new balance.
// The balance is left unchanged when amount exceeds it.
func (s *Service) Withdraw(number string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrBadAmount
	}
	return s.adjust(number, amount, model.TypeWithdrawal)
}

func (s *Service) adjust(number string, amount decimal.Decimal, typ model.TransactionType) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.store.Load()
	if err != nil {
		return decimal.Zero, fmt.Errorf("loading accounts: %w", err)
	}

	acct, ok := book.Get(number)
	if !ok {
		return decimal.Zero, ErrNotFound
	}

	switch typ {
	case model.TypeDeposit:
		acct.Balance = acct.Balance.Add(amount)
	case model.TypeWithdrawal:
		if amount.GreaterThan(acct.Balance) {
			return decimal.Zero, ErrInsufficient
		}
		acct.Balance = acct.Balance.Sub(amount)
	}
	book.Put(acct)

	if err := s.store.RewriteAll(book); err != nil {
		return decimal.Zero, fmt.Errorf("saving accounts: %w", err)
	}

	txn := model.Transaction{
		AccountNumber: number,
		Type:          typ,
		Amount:        amount,
		Date:          s.now(),
	}
	if err := s.log.Append(txn); err != nil {
		return decimal.Zero, fmt.Errorf("logging transaction: %w", err)
	}
	return acct.Balance, nil
}
