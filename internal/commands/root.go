package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tellerbook-dev/tellerbook/internal/account"
	"github.com/tellerbook-dev/tellerbook/internal/buildinfo"
	"github.com/tellerbook-dev/tellerbook/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg   *config.Config
	rules account.Rules
	log   *log.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "tellerbook",
		Short:   "Savings and checking account rules, from the terminal",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newDemoCommand(a))
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newShellCommand(a))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFromEnv(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	lvl, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	rules, err := cfg.AccountRules()
	if err != nil {
		return fmt.Errorf("config %s: %w", a.configPath, err)
	}

	a.cfg = cfg
	a.rules = rules
	a.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "tellerbook", Level: lvl})
	return nil
}
