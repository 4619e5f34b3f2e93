// Package report renders account summaries and scenario results as text.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tellerbook-dev/tellerbook/internal/account"
	"github.com/tellerbook-dev/tellerbook/internal/scenario"
)

var titles = map[account.Kind]string{
	account.KindBase:     "Account",
	account.KindSavings:  "Savings Account",
	account.KindChecking: "Checking Account",
}

var reasonText = map[account.Reason]string{
	account.ReasonInvalidAmount:     "amount must be greater than zero",
	account.ReasonInsufficientFunds: "amount exceeds the available balance",
	account.ReasonAccountInactive:   "savings account is inactive",
}

// Money formats an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Reason returns a human-readable explanation of a rejection reason.
func Reason(r account.Reason) string {
	if text, ok := reasonText[r]; ok {
		return text
	}
	return string(r)
}

// Declined describes a rejected operation, e.g.
// "withdraw 50.00 declined: amount exceeds the available balance".
func Declined(err error) string {
	if err == nil {
		return ""
	}
	var rej *account.RejectionError
	if !errors.As(err, &rej) {
		return err.Error()
	}
	return fmt.Sprintf("%s %s declined: %s", rej.Op, Money(rej.Amount), Reason(rej.Reason))
}

// WriteSummary writes the variant's report block. Base accounts list
// deposits and withdrawals separately; savings and checking accounts show
// the combined transaction count plus their own status line.
func WriteSummary(w io.Writer, s account.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "=== %s ===\n", titles[s.Kind])
	fmt.Fprintf(tw, "Balance:\t%s\n", Money(s.Balance))
	fmt.Fprintf(tw, "Monthly fee:\t%s\n", Money(s.MonthlyFee))

	switch s.Kind {
	case account.KindSavings:
		fmt.Fprintf(tw, "Transactions:\t%d\n", s.Transactions())
		fmt.Fprintf(tw, "Status:\t%s\n", status(s.Active))
	case account.KindChecking:
		fmt.Fprintf(tw, "Transactions:\t%d\n", s.Transactions())
		fmt.Fprintf(tw, "Overdraft:\t%s\n", Money(s.Overdraft))
	default:
		fmt.Fprintf(tw, "Deposits:\t%d\n", s.Deposits)
		fmt.Fprintf(tw, "Withdrawals:\t%d\n", s.Withdrawals)
	}
	return tw.Flush()
}

func status(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}

// WriteResult writes a scenario run: the opening summary of each account,
// one line per step, a summary block after every summary or statement step
// and the closing summary.
func WriteResult(w io.Writer, res *scenario.Result) error {
	fmt.Fprintf(w, "== %s ==\n", res.Name)
	for i, ar := range res.Accounts {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 32))
		}
		fmt.Fprintf(w, "\n[%s]\n", ar.Label)
		if err := WriteSummary(w, ar.Opening); err != nil {
			return err
		}
		for _, sr := range ar.Steps {
			switch {
			case sr.Err != nil:
				fmt.Fprintf(w, "  x %s\n", Declined(sr.Err))
			default:
				fmt.Fprintf(w, "  + %s\n", sr.Step)
			}
			if sr.Step.Op == account.OpSummary {
				if err := WriteSummary(w, sr.Summary); err != nil {
					return err
				}
			}
		}
		fmt.Fprintln(w)
		if err := WriteSummary(w, ar.Final); err != nil {
			return err
		}
	}
	if n := res.Declined(); n > 0 {
		fmt.Fprintf(w, "\n%d operation(s) declined\n", n)
	}
	return nil
}
