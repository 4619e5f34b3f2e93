package account

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rules holds the tunable savings-account constants.
type Rules struct {
	SavingsActiveThreshold decimal.Decimal
	FreeWithdrawals        int
	ExcessWithdrawalFee    decimal.Decimal
}

// DefaultRules returns the standard savings rules: active from 10000,
// four free withdrawals per period, 1000 for each one after that.
func DefaultRules() Rules {
	return Rules{
		SavingsActiveThreshold: decimal.NewFromInt(10000),
		FreeWithdrawals:        4,
		ExcessWithdrawalFee:    decimal.NewFromInt(1000),
	}
}

// Validate checks that no rule is negative.
func (r Rules) Validate() error {
	if r.SavingsActiveThreshold.IsNegative() {
		return fmt.Errorf("savings active threshold %s is negative", r.SavingsActiveThreshold)
	}
	if r.FreeWithdrawals < 0 {
		return fmt.Errorf("free withdrawals %d is negative", r.FreeWithdrawals)
	}
	if r.ExcessWithdrawalFee.IsNegative() {
		return fmt.Errorf("excess withdrawal fee %s is negative", r.ExcessWithdrawalFee)
	}
	return nil
}
