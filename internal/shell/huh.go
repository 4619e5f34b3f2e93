package shell

import (
	"errors"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// HuhPrompter asks questions with huh forms.
type HuhPrompter struct {
	In         io.Reader
	Out        io.Writer
	Accessible bool // plain line-based prompts, for screen readers and pipes
}

func (h *HuhPrompter) run(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(h.Accessible)
	if h.In != nil {
		form = form.WithInput(h.In)
	}
	if h.Out != nil {
		form = form.WithOutput(h.Out)
	}
	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Setup asks for the account type, opening balance and annual rate.
func (h *HuhPrompter) Setup(defaults Setup) (Setup, error) {
	setup := defaults
	if setup.Kind == "" {
		setup.Kind = account.KindSavings
	}
	err := h.run(
		huh.NewSelect[account.Kind]().
			Title("Account type").
			Options(
				huh.NewOption("Savings", account.KindSavings),
				huh.NewOption("Checking", account.KindChecking),
			).
			Value(&setup.Kind),
		huh.NewInput().
			Title("Initial balance").
			Value(&setup.InitialBalance),
		huh.NewInput().
			Title("Annual interest rate (%)").
			Value(&setup.AnnualRate),
	)
	return setup, err
}

// Action shows the menu.
func (h *HuhPrompter) Action() (Action, error) {
	action := ActionSummary
	opts := make([]huh.Option[Action], 0, len(Actions))
	for _, a := range Actions {
		opts = append(opts, huh.NewOption(titleCase(string(a)), a))
	}
	err := h.run(
		huh.NewSelect[Action]().
			Title("What next?").
			Options(opts...).
			Value(&action),
	)
	return action, err
}

// Amount asks for a number. Validation is left to the account rules.
func (h *HuhPrompter) Amount(title string) (string, error) {
	var text string
	err := h.run(huh.NewInput().Title(title).Value(&text))
	return text, err
}
