package account

import "github.com/shopspring/decimal"

// Base is an account with only the default rules: deposits and withdrawals
// are validated against the amount and the balance, nothing more.
type Base struct {
	ledger
}

// NewBase opens a Base account.
func NewBase(initialBalance, annualRate decimal.Decimal) *Base {
	return &Base{ledger: newLedger(initialBalance, annualRate)}
}

func (a *Base) Kind() Kind { return KindBase }

func (a *Base) Deposit(amount decimal.Decimal) error { return a.deposit(amount) }

func (a *Base) Withdraw(amount decimal.Decimal) error { return a.withdraw(amount) }

func (a *Base) MonthlyStatement() { a.statement() }

func (a *Base) Summary() Summary { return a.summary(KindBase) }
