package scenario

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// Result is the outcome of running a Scenario.
type Result struct {
	Name     string
	Accounts []AccountResult
}

// Declined counts the rejected steps across all accounts.
func (r *Result) Declined() int {
	n := 0
	for _, a := range r.Accounts {
		for _, s := range a.Steps {
			if s.Err != nil {
				n++
			}
		}
	}
	return n
}

// AccountResult records one script's run.
type AccountResult struct {
	Label   string
	Opening account.Summary
	Steps   []StepResult
	Final   account.Summary
}

// StepResult records a step and the account summary right after it. Err is
// the rejection, if any, and Reason its code.
type StepResult struct {
	Step    Step
	Err     error
	Reason  account.Reason
	Summary account.Summary
}

// Runner applies scenarios to freshly opened accounts.
type Runner struct {
	rules account.Rules
	log   *log.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(rules account.Rules, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{rules: rules, log: logger}
}

// Run executes every script. Declined operations are recorded in the
// result; only a script that cannot open its account is an error.
func (r *Runner) Run(sc *Scenario) (*Result, error) {
	res := &Result{Name: sc.Name}
	for _, script := range sc.Scripts {
		ar, err := r.runScript(script)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", script.Label, err)
		}
		res.Accounts = append(res.Accounts, ar)
	}
	r.log.Info("scenario complete", "name", sc.Name, "accounts", len(res.Accounts), "declined", res.Declined())
	return res, nil
}

func (r *Runner) runScript(script Script) (AccountResult, error) {
	acct, err := account.New(script.Kind, script.InitialBalance, script.AnnualRate, account.WithRules(r.rules))
	if err != nil {
		return AccountResult{}, err
	}
	logger := r.log.With("account", script.Label, "kind", script.Kind)
	logger.Debug("opened", "balance", script.InitialBalance, "rate", script.AnnualRate)

	ar := AccountResult{Label: script.Label, Opening: acct.Summary()}
	for _, step := range script.Steps {
		sr := StepResult{Step: step}
		sr.Err = Apply(acct, step)
		if sr.Err != nil {
			sr.Reason = account.ReasonOf(sr.Err)
			logger.Warn("operation declined", "op", step.Op, "amount", step.Amount, "reason", sr.Reason)
		} else {
			logger.Debug("operation applied", "op", step.Op, "amount", step.Amount)
		}
		sr.Summary = acct.Summary()
		ar.Steps = append(ar.Steps, sr)
	}
	ar.Final = acct.Summary()
	return ar, nil
}

// Apply performs a single step on acct. Summary steps change nothing.
func Apply(acct account.Account, step Step) error {
	switch step.Op {
	case account.OpDeposit:
		return acct.Deposit(step.Amount)
	case account.OpWithdraw:
		return acct.Withdraw(step.Amount)
	case account.OpStatement:
		acct.MonthlyStatement()
		return nil
	case account.OpSummary:
		return nil
	default:
		return fmt.Errorf("unknown operation %q", step.Op)
	}
}
