package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tellerbook-dev/tellerbook/internal/report"
	"github.com/tellerbook-dev/tellerbook/internal/scenario"
)

func newDemoCommand(a *app) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk a savings and a checking account through the built-in demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Demo()
			if export != "" {
				if err := exportScenario(export, sc); err != nil {
					return err
				}
				a.log.Info("demo scenario exported", "path", export)
			}

			res, err := scenario.NewRunner(a.rules, a.log).Run(sc)
			if err != nil {
				return err
			}
			return report.WriteResult(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "also write the demo scenario as CSV to this path")

	return cmd
}

func exportScenario(path string, sc *scenario.Scenario) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := scenario.WriteScenario(f, sc); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
