// Package account implements savings and checking accounts and the rules
// each applies to deposits, withdrawals and the monthly statement.
//
// Accounts are not safe for concurrent use. Callers sharing one across
// goroutines must hold a lock per account for the whole operation.
package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies an account variant.
type Kind string

const (
	KindBase     Kind = "base"
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
)

// ParseKind resolves a case-insensitive kind name. Only savings and checking
// can be opened through New, so "base" is not accepted here.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSavings, KindChecking:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Account is the operation set every variant implements.
type Account interface {
	Kind() Kind
	// Deposit adds funds. A non-nil error is a *RejectionError and the
	// account is left unchanged.
	Deposit(amount decimal.Decimal) error
	// Withdraw removes funds under the variant's rules. A non-nil error is a
	// *RejectionError and the account is left unchanged.
	Withdraw(amount decimal.Decimal) error
	// MonthlyStatement applies the period's fee and interest and starts a
	// new period. It cannot fail.
	MonthlyStatement()
	Summary() Summary
}

// Summary is a point-in-time report of an account. Active is only meaningful
// for savings accounts and Overdraft only for checking accounts.
type Summary struct {
	Kind        Kind
	Balance     decimal.Decimal
	AnnualRate  decimal.Decimal
	MonthlyFee  decimal.Decimal
	Deposits    int
	Withdrawals int
	Active      bool
	Overdraft   decimal.Decimal
}

// Transactions is the number of deposits plus withdrawals in the period.
func (s Summary) Transactions() int {
	return s.Deposits + s.Withdrawals
}

// Option configures an account created by New.
type Option func(*options)

type options struct {
	rules Rules
}

// WithRules overrides the savings rules.
func WithRules(r Rules) Option {
	return func(o *options) { o.rules = r }
}

// New opens an account of the given kind.
func New(kind Kind, initialBalance, annualRate decimal.Decimal, opts ...Option) (Account, error) {
	o := options{rules: DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if initialBalance.IsNegative() {
		return nil, fmt.Errorf("opening %s account with balance %s: %w", kind, initialBalance, ErrInvalidAmount)
	}
	if err := o.rules.Validate(); err != nil {
		return nil, fmt.Errorf("opening %s account: %w", kind, err)
	}

	switch kind {
	case KindSavings:
		return NewSavings(initialBalance, annualRate, o.rules), nil
	case KindChecking:
		return NewChecking(initialBalance, annualRate), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
