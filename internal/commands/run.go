package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tellerbook-dev/tellerbook/internal/report"
	"github.com/tellerbook-dev/tellerbook/internal/scenario"
)

func newRunCommand(a *app) *cobra.Command {
	var format string
	var strict bool

	cmd := &cobra.Command{
		Use:   "run <scenario-file>",
		Short: "Run a scenario file of account operations",
		Long: "Run a scenario file of account operations.\n\n" +
			"YAML (.yaml, .yml) and CSV (.csv) scenarios are supported. CSV files use the header\n" +
			"  " + scenario.Header,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.DefaultRegistry().Load(args[0], format)
			if err != nil {
				return err
			}

			res, err := scenario.NewRunner(a.rules, a.log).Run(sc)
			if err != nil {
				return err
			}
			if err := report.WriteResult(cmd.OutOrStdout(), res); err != nil {
				return err
			}

			if n := res.Declined(); strict && n > 0 {
				return fmt.Errorf("%d operation(s) declined", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "scenario format: yaml or csv (default: from file extension)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any operation is declined")

	return cmd
}
