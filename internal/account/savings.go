package account

import "github.com/shopspring/decimal"

// Savings is an account that only accepts deposits and withdrawals while its
// balance is at or above the activity threshold, and charges a fee for each
// withdrawal past the free allowance in a period.
type Savings struct {
	ledger
	rules Rules
}

// NewSavings opens a Savings account.
func NewSavings(initialBalance, annualRate decimal.Decimal, rules Rules) *Savings {
	return &Savings{ledger: newLedger(initialBalance, annualRate), rules: rules}
}

func (a *Savings) Kind() Kind { return KindSavings }

// Active reports whether the balance currently meets the activity threshold.
func (a *Savings) Active() bool {
	return a.balance.GreaterThanOrEqual(a.rules.SavingsActiveThreshold)
}

func (a *Savings) Deposit(amount decimal.Decimal) error {
	if !a.Active() {
		return reject(OpDeposit, amount, a.balance, ReasonAccountInactive)
	}
	return a.deposit(amount)
}

func (a *Savings) Withdraw(amount decimal.Decimal) error {
	if !a.Active() {
		return reject(OpWithdraw, amount, a.balance, ReasonAccountInactive)
	}
	return a.withdraw(amount)
}

// MonthlyStatement adds the excess-withdrawal fee while the period's
// withdrawal count is still known, then runs the default statement.
func (a *Savings) MonthlyStatement() {
	if extra := a.withdrawals - a.rules.FreeWithdrawals; extra > 0 {
		fee := a.rules.ExcessWithdrawalFee.Mul(decimal.NewFromInt(int64(extra)))
		a.monthlyFee = a.monthlyFee.Add(fee)
	}
	a.statement()
}

func (a *Savings) Summary() Summary {
	s := a.summary(KindSavings)
	s.Active = a.Active()
	return s
}
