package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavings_InactiveRejects(t *testing.T) {
	a := NewSavings(dec("5000"), dec("5"), DefaultRules())
	assert.False(t, a.Active())

	err := a.Deposit(dec("100"))
	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.Equal(t, ReasonAccountInactive, ReasonOf(err))
	assert.True(t, a.Balance().Equal(dec("5000")))

	err = a.Withdraw(dec("100"))
	assert.ErrorIs(t, err, ErrAccountInactive)
	assert.True(t, a.Balance().Equal(dec("5000")))
	assert.Zero(t, a.Summary().Transactions())
}

func TestSavings_ActiveDeposit(t *testing.T) {
	a := NewSavings(dec("12000"), dec("5"), DefaultRules())
	require.NoError(t, a.Deposit(dec("100")))
	assert.True(t, a.Balance().Equal(dec("12100")))
}

func TestSavings_ThresholdIsInclusive(t *testing.T) {
	a := NewSavings(dec("10000"), dec("0"), DefaultRules())
	assert.True(t, a.Active())
}

func TestSavings_InactiveCheckedBeforeAmount(t *testing.T) {
	a := NewSavings(dec("5000"), dec("0"), DefaultRules())
	assert.ErrorIs(t, a.Deposit(dec("-1")), ErrAccountInactive)
}

func TestSavings_GateFollowsBalance(t *testing.T) {
	a := NewSavings(dec("10500"), dec("0"), DefaultRules())
	require.NoError(t, a.Withdraw(dec("1000")))
	assert.False(t, a.Active(), "balance 9500 is below the threshold")
	assert.ErrorIs(t, a.Deposit(dec("1000")), ErrAccountInactive)
	assert.False(t, a.Summary().Active)
}

func TestSavings_ExcessWithdrawalFee(t *testing.T) {
	a := NewSavings(dec("20000"), dec("0"), DefaultRules())
	for i := 0; i < 6; i++ {
		require.NoError(t, a.Withdraw(dec("100")))
	}
	require.True(t, a.Balance().Equal(dec("19400")))

	a.MonthlyStatement()

	// 6 withdrawals, 4 free: 2 * 1000 charged.
	assert.True(t, a.Balance().Equal(dec("17400")), "got %s", a.Balance())
	s := a.Summary()
	assert.Zero(t, s.Withdrawals)
	assert.True(t, s.MonthlyFee.IsZero())
}

func TestSavings_NoFeeWithinAllowance(t *testing.T) {
	a := NewSavings(dec("20000"), dec("0"), DefaultRules())
	for i := 0; i < 4; i++ {
		require.NoError(t, a.Withdraw(dec("100")))
	}
	a.MonthlyStatement()
	assert.True(t, a.Balance().Equal(dec("19600")), "got %s", a.Balance())
}

func TestSavings_FeeThenInterest(t *testing.T) {
	a := NewSavings(dec("20000"), dec("12"), DefaultRules())
	for i := 0; i < 5; i++ {
		require.NoError(t, a.Withdraw(dec("1000")))
	}
	a.MonthlyStatement()
	// (15000 - 1000) * 1.01
	assert.True(t, a.Balance().Equal(dec("14140")), "got %s", a.Balance())
}

func TestSavings_CustomRules(t *testing.T) {
	rules := Rules{
		SavingsActiveThreshold: dec("100"),
		FreeWithdrawals:        1,
		ExcessWithdrawalFee:    dec("5"),
	}
	acct, err := New(KindSavings, dec("500"), dec("0"), WithRules(rules))
	require.NoError(t, err)

	require.NoError(t, acct.Withdraw(dec("10")))
	require.NoError(t, acct.Withdraw(dec("10")))
	require.NoError(t, acct.Withdraw(dec("10")))
	acct.MonthlyStatement()
	assert.True(t, acct.Summary().Balance.Equal(dec("460")), "got %s", acct.Summary().Balance)
}

func TestSavings_Summary(t *testing.T) {
	a := NewSavings(dec("12000"), dec("5"), DefaultRules())
	require.NoError(t, a.Withdraw(dec("2000")))
	require.NoError(t, a.Deposit(dec("500")))

	s := a.Summary()
	assert.Equal(t, KindSavings, s.Kind)
	assert.True(t, s.Active)
	assert.Equal(t, 2, s.Transactions())
	assert.True(t, s.Balance.Equal(dec("10500")))
}
