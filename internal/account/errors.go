package account

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Reason is the machine-readable cause of a declined operation.
type Reason string

const (
	ReasonInvalidAmount     Reason = "invalid_amount"
	ReasonInsufficientFunds Reason = "insufficient_funds"
	ReasonAccountInactive   Reason = "account_inactive"
)

var (
	// ErrInvalidAmount is returned for a non-positive deposit or withdrawal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	// Checking accounts never return it.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountInactive is returned by a savings account below its activity threshold.
	ErrAccountInactive = errors.New("account inactive")
	// ErrUnknownKind is returned by New for an unsupported account kind.
	ErrUnknownKind = errors.New("unknown account kind")
)

var reasonErrs = map[Reason]error{
	ReasonInvalidAmount:     ErrInvalidAmount,
	ReasonInsufficientFunds: ErrInsufficientFunds,
	ReasonAccountInactive:   ErrAccountInactive,
}

// Op names an account operation.
type Op string

const (
	OpDeposit   Op = "deposit"
	OpWithdraw  Op = "withdraw"
	OpStatement Op = "statement"
	OpSummary   Op = "summary"
)

// RejectionError reports a declined deposit or withdrawal. The account is
// unchanged whenever one is returned.
type RejectionError struct {
	Op      Op
	Amount  decimal.Decimal
	Balance decimal.Decimal // balance at the time of the attempt
	Reason  Reason
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s %s declined: %s (balance %s)", e.Op, e.Amount.String(), reasonErrs[e.Reason], e.Balance.StringFixed(2))
}

// Unwrap lets errors.Is match the sentinel for the rejection reason.
func (e *RejectionError) Unwrap() error {
	return reasonErrs[e.Reason]
}

func reject(op Op, amount, balance decimal.Decimal, reason Reason) error {
	return &RejectionError{Op: op, Amount: amount, Balance: balance, Reason: reason}
}

// ReasonOf returns the rejection reason carried by err, or "" if err is nil
// or not a rejection.
func ReasonOf(err error) Reason {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	for reason, sentinel := range reasonErrs {
		if errors.Is(err, sentinel) {
			return reason
		}
	}
	return ""
}
