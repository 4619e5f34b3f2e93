package scenario

import (
	"github.com/shopspring/decimal"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// Demo returns the built-in walkthrough: a savings account that drops below
// its activity threshold part way through, and a checking account that goes
// into overdraft and is paid back.
func Demo() *Scenario {
	return &Scenario{
		Name: "demo",
		Scripts: []Script{
			{
				Label:          "savings",
				Kind:           account.KindSavings,
				InitialBalance: decimal.NewFromInt(12000),
				AnnualRate:     decimal.NewFromInt(5),
				Steps: []Step{
					withdraw(2000),
					deposit(500),
					withdraw(1000),
					withdraw(1000),
					withdraw(1000),
					withdraw(1000),
					{Op: account.OpSummary},
					{Op: account.OpStatement},
				},
			},
			{
				Label:          "checking",
				Kind:           account.KindChecking,
				InitialBalance: decimal.NewFromInt(500),
				AnnualRate:     decimal.NewFromInt(3),
				Steps: []Step{
					withdraw(800),
					deposit(200),
					deposit(150),
					{Op: account.OpStatement},
				},
			},
		},
	}
}

func deposit(n int64) Step {
	return Step{Op: account.OpDeposit, Amount: decimal.NewFromInt(n)}
}

func withdraw(n int64) Step {
	return Step{Op: account.OpWithdraw, Amount: decimal.NewFromInt(n)}
}
