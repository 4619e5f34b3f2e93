// Package shell is the interactive menu over a single account.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/tellerbook-dev/tellerbook/internal/account"
	"github.com/tellerbook-dev/tellerbook/internal/report"
)

// ErrAborted is returned by a Prompter when the user cancels a prompt. The
// shell treats it like choosing exit.
var ErrAborted = errors.New("aborted")

// Action is a menu choice.
type Action string

const (
	ActionDeposit   Action = "deposit"
	ActionWithdraw  Action = "withdraw"
	ActionStatement Action = "statement"
	ActionSummary   Action = "summary"
	ActionExit      Action = "exit"
)

// Actions lists the menu in display order.
var Actions = []Action{ActionDeposit, ActionWithdraw, ActionStatement, ActionSummary, ActionExit}

// Setup is what the user chose when opening the account. Numbers are kept
// as typed and parsed with ParseAmount.
type Setup struct {
	Kind           account.Kind
	InitialBalance string
	AnnualRate     string
}

// Prompter collects input from the user.
type Prompter interface {
	Setup(defaults Setup) (Setup, error)
	Action() (Action, error)
	Amount(title string) (string, error)
}

// ParseAmount parses user input, treating anything unparseable as zero.
func ParseAmount(text string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Shell runs the menu loop.
type Shell struct {
	prompt Prompter
	out    io.Writer
	log    *log.Logger
	rules  account.Rules
}

// New creates a Shell. A nil logger discards output.
func New(p Prompter, out io.Writer, logger *log.Logger, rules account.Rules) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{prompt: p, out: out, log: logger, rules: rules}
}

// Run opens an account from the user's setup answers and loops over the
// menu until exit. Declined operations are reported and the loop goes on.
func (s *Shell) Run(defaults Setup) error {
	setup, err := s.prompt.Setup(defaults)
	if errors.Is(err, ErrAborted) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("account setup: %w", err)
	}

	acct, err := account.New(setup.Kind, ParseAmount(setup.InitialBalance), ParseAmount(setup.AnnualRate), account.WithRules(s.rules))
	if err != nil {
		return fmt.Errorf("opening account: %w", err)
	}
	s.log.Info("account opened", "kind", setup.Kind, "balance", acct.Summary().Balance)
	if err := report.WriteSummary(s.out, acct.Summary()); err != nil {
		return err
	}

	for {
		action, err := s.prompt.Action()
		if errors.Is(err, ErrAborted) {
			action = ActionExit
		} else if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		done, err := s.handle(acct, action)
		if err != nil {
			return err
		}
		if done {
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
	}
}

func (s *Shell) handle(acct account.Account, action Action) (bool, error) {
	switch action {
	case ActionDeposit, ActionWithdraw:
		text, err := s.prompt.Amount(fmt.Sprintf("Amount to %s", action))
		if errors.Is(err, ErrAborted) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading amount: %w", err)
		}
		amount := ParseAmount(text)

		var opErr error
		if action == ActionDeposit {
			opErr = acct.Deposit(amount)
		} else {
			opErr = acct.Withdraw(amount)
		}
		if opErr != nil {
			s.log.Warn("operation declined", "op", action, "amount", amount, "reason", account.ReasonOf(opErr))
			fmt.Fprintln(s.out, report.Declined(opErr))
			return false, nil
		}
		s.log.Debug("operation applied", "op", action, "amount", amount)
		fmt.Fprintf(s.out, "%s of %s accepted. Balance: %s\n", titleCase(string(action)), report.Money(amount), report.Money(acct.Summary().Balance))
		return false, nil

	case ActionStatement:
		acct.MonthlyStatement()
		s.log.Debug("statement applied")
		fmt.Fprintln(s.out, "Monthly statement applied.")
		return false, report.WriteSummary(s.out, acct.Summary())

	case ActionSummary:
		return false, report.WriteSummary(s.out, acct.Summary())

	case ActionExit:
		return true, nil

	default:
		return false, fmt.Errorf("unknown menu action %q", action)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
