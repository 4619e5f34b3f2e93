package account

import "github.com/shopspring/decimal"

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// ledger is the field set shared by every variant together with the default
// transaction rules. Variants embed it and call these helpers explicitly.
type ledger struct {
	balance     decimal.Decimal
	annualRate  decimal.Decimal // percent
	monthlyFee  decimal.Decimal
	deposits    int
	withdrawals int
}

func newLedger(balance, annualRate decimal.Decimal) ledger {
	return ledger{balance: balance, annualRate: annualRate}
}

// Balance returns the current funds.
func (l *ledger) Balance() decimal.Decimal { return l.balance }

// MonthlyFee returns the fee accumulated for the current period.
func (l *ledger) MonthlyFee() decimal.Decimal { return l.monthlyFee }

func (l *ledger) deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(OpDeposit, amount, l.balance, ReasonInvalidAmount)
	}
	l.balance = l.balance.Add(amount)
	l.deposits++
	return nil
}

func (l *ledger) withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return reject(OpWithdraw, amount, l.balance, ReasonInvalidAmount)
	}
	if amount.GreaterThan(l.balance) {
		return reject(OpWithdraw, amount, l.balance, ReasonInsufficientFunds)
	}
	l.balance = l.balance.Sub(amount)
	l.withdrawals++
	return nil
}

// accrueInterest adds one month of interest on the current balance.
func (l *ledger) accrueInterest() {
	interest := l.balance.Mul(l.annualRate).Div(hundred).Div(monthsInYear)
	l.balance = l.balance.Add(interest)
}

// statement charges the fee, then accrues interest on what is left, then
// opens a new period.
func (l *ledger) statement() {
	l.balance = l.balance.Sub(l.monthlyFee)
	l.accrueInterest()
	l.deposits = 0
	l.withdrawals = 0
	l.monthlyFee = decimal.Zero
}

func (l *ledger) summary(kind Kind) Summary {
	return Summary{
		Kind:        kind,
		Balance:     l.balance,
		AnnualRate:  l.annualRate,
		MonthlyFee:  l.monthlyFee,
		Deposits:    l.deposits,
		Withdrawals: l.withdrawals,
		Overdraft:   decimal.Zero,
	}
}
