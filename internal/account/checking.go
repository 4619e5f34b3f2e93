package account

import "github.com/shopspring/decimal"

// Checking is an account whose withdrawals are never declined for lack of
// funds. Any shortfall is carried as overdraft, and deposits pay the
// overdraft down before they add to the balance.
type Checking struct {
	ledger
	overdraft decimal.Decimal
}

// NewChecking opens a Checking account with no overdraft.
func NewChecking(initialBalance, annualRate decimal.Decimal) *Checking {
	return &Checking{ledger: newLedger(initialBalance, annualRate)}
}

func (a *Checking) Kind() Kind { return KindChecking }

// Overdraft returns the outstanding shortfall.
func (a *Checking) Overdraft() decimal.Decimal { return a.overdraft }

// InOverdraft reports whether any shortfall is outstanding.
func (a *Checking) InOverdraft() bool { return a.overdraft.IsPositive() }

func (a *Checking) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(OpWithdraw, amount, a.balance, ReasonInvalidAmount)
	}
	if amount.LessThanOrEqual(a.balance) {
		a.balance = a.balance.Sub(amount)
	} else {
		a.overdraft = a.overdraft.Add(amount.Sub(a.balance))
		a.balance = decimal.Zero
	}
	a.withdrawals++
	return nil
}

func (a *Checking) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(OpDeposit, amount, a.balance, ReasonInvalidAmount)
	}
	switch {
	case !a.InOverdraft():
		a.balance = a.balance.Add(amount)
	case amount.GreaterThanOrEqual(a.overdraft):
		a.balance = a.balance.Add(amount.Sub(a.overdraft))
		a.overdraft = decimal.Zero
	default:
		a.overdraft = a.overdraft.Sub(amount)
	}
	a.deposits++
	return nil
}

// MonthlyStatement runs the default statement. Overdraft is not charged or
// changed by it.
func (a *Checking) MonthlyStatement() { a.statement() }

func (a *Checking) Summary() Summary {
	s := a.summary(KindChecking)
	s.Overdraft = a.overdraft
	return s
}
