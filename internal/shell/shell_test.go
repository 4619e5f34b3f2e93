package shell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// scriptedPrompter replays canned answers. Running out of actions aborts.
type scriptedPrompter struct {
	setup     Setup
	setupErr  error
	actions   []Action
	amounts   []string
	gotSetups []Setup
}

func (p *scriptedPrompter) Setup(defaults Setup) (Setup, error) {
	p.gotSetups = append(p.gotSetups, defaults)
	return p.setup, p.setupErr
}

func (p *scriptedPrompter) Action() (Action, error) {
	if len(p.actions) == 0 {
		return "", ErrAborted
	}
	a := p.actions[0]
	p.actions = p.actions[1:]
	return a, nil
}

func (p *scriptedPrompter) Amount(string) (string, error) {
	if len(p.amounts) == 0 {
		return "", ErrAborted
	}
	a := p.amounts[0]
	p.amounts = p.amounts[1:]
	return a, nil
}

func runShell(t *testing.T, p *scriptedPrompter) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(p, &out, nil, account.DefaultRules())
	require.NoError(t, sh.Run(Setup{Kind: account.KindSavings, InitialBalance: "10000", AnnualRate: "5"}))
	return out.String()
}

func TestShell_CheckingSession(t *testing.T) {
	p := &scriptedPrompter{
		setup:   Setup{Kind: account.KindChecking, InitialBalance: "500", AnnualRate: "3"},
		actions: []Action{ActionWithdraw, ActionSummary, ActionDeposit, ActionDeposit, ActionStatement, ActionExit},
		amounts: []string{"800", "200", "150"},
	}
	out := runShell(t, p)

	require.Len(t, p.gotSetups, 1)
	assert.Equal(t, "10000", p.gotSetups[0].InitialBalance, "defaults are offered to the prompter")

	assert.Contains(t, out, "=== Checking Account ===")
	assert.Contains(t, out, "Withdraw of 800.00 accepted. Balance: 0.00")
	assert.Contains(t, out, "Overdraft:     300.00")
	assert.Contains(t, out, "Deposit of 150.00 accepted. Balance: 50.00")
	assert.Contains(t, out, "Monthly statement applied.")
	assert.Contains(t, out, "Balance:       50.13")
	assert.Contains(t, out, "Goodbye.")
}

func TestShell_DeclinedKeepsGoing(t *testing.T) {
	p := &scriptedPrompter{
		setup:   Setup{Kind: account.KindSavings, InitialBalance: "5000", AnnualRate: "5"},
		actions: []Action{ActionDeposit, ActionSummary, ActionExit},
		amounts: []string{"100"},
	}
	out := runShell(t, p)

	assert.Contains(t, out, "deposit 100.00 declined: savings account is inactive")
	assert.Contains(t, out, "Status:        Inactive")
	assert.Contains(t, out, "Balance:       5000.00")
}

func TestShell_UnparseableAmountIsZero(t *testing.T) {
	var logs bytes.Buffer
	p := &scriptedPrompter{
		setup:   Setup{Kind: account.KindSavings, InitialBalance: "12000", AnnualRate: "abc"},
		actions: []Action{ActionWithdraw, ActionExit},
		amounts: []string{"lots"},
	}
	var out bytes.Buffer
	sh := New(p, &out, log.New(&logs), account.DefaultRules())
	require.NoError(t, sh.Run(Setup{}))

	assert.Contains(t, out.String(), "withdraw 0.00 declined: amount must be greater than zero")
	assert.Contains(t, logs.String(), "invalid_amount")
}

func TestShell_AbortEndsSession(t *testing.T) {
	p := &scriptedPrompter{
		setup:   Setup{Kind: account.KindChecking, InitialBalance: "1", AnnualRate: "0"},
		actions: []Action{ActionDeposit, ActionSummary},
	}
	out := runShell(t, p)
	assert.Contains(t, out, "Goodbye.")
	assert.NotContains(t, out, "accepted")
}

func TestShell_AbortDuringSetup(t *testing.T) {
	p := &scriptedPrompter{setupErr: ErrAborted}
	out := runShell(t, p)
	assert.Empty(t, out)
}

func TestShell_SetupErrors(t *testing.T) {
	var out bytes.Buffer

	sh := New(&scriptedPrompter{setupErr: errors.New("tty gone")}, &out, nil, account.DefaultRules())
	require.Error(t, sh.Run(Setup{}))

	sh = New(&scriptedPrompter{setup: Setup{Kind: "brokerage"}}, &out, nil, account.DefaultRules())
	assert.ErrorIs(t, sh.Run(Setup{}), account.ErrUnknownKind)

	sh = New(&scriptedPrompter{setup: Setup{Kind: account.KindChecking, InitialBalance: "-5"}}, &out, nil, account.DefaultRules())
	assert.ErrorIs(t, sh.Run(Setup{}), account.ErrInvalidAmount)
}

func TestShell_UnknownAction(t *testing.T) {
	p := &scriptedPrompter{
		setup:   Setup{Kind: account.KindChecking, InitialBalance: "1", AnnualRate: "0"},
		actions: []Action{"transfer"},
	}
	sh := New(p, &bytes.Buffer{}, nil, account.DefaultRules())
	require.Error(t, sh.Run(Setup{}))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "12.5", ParseAmount(" 12.5 ").String())
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("twelve").IsZero())
	assert.Equal(t, "-3", ParseAmount("-3").String())
}
