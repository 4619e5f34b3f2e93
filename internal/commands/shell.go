package commands

import (
	"github.com/spf13/cobra"

	"github.com/tellerbook-dev/tellerbook/internal/account"
	"github.com/tellerbook-dev/tellerbook/internal/shell"
)

func newShellCommand(a *app) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Open an account and operate on it from an interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := &shell.HuhPrompter{
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				Accessible: accessible,
			}
			kind, err := account.ParseKind(a.cfg.Defaults.Kind)
			if err != nil {
				a.log.Warn("ignoring default account kind", "kind", a.cfg.Defaults.Kind)
				kind = account.KindSavings
			}
			defaults := shell.Setup{
				Kind:           kind,
				InitialBalance: a.cfg.Defaults.InitialBalance,
				AnnualRate:     a.cfg.Defaults.AnnualRate,
			}
			return shell.New(prompter, cmd.OutOrStdout(), a.log, a.rules).Run(defaults)
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "use plain line-based prompts")

	return cmd
}
