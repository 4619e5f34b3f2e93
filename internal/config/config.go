package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "tellerbook.yaml"

// Environment variables consulted by LoadFromEnv.
const (
	EnvConfigPath = "TELLERBOOK_CONFIG"
	EnvLogLevel   = "TELLERBOOK_LOG_LEVEL"
)

// Config represents the top-level tellerbook.yaml configuration.
type Config struct {
	Rules    RulesConfig    `yaml:"rules"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Log      LogConfig      `yaml:"log"`
}

// RulesConfig holds the savings rules. Amounts are decimal strings.
type RulesConfig struct {
	SavingsActiveThreshold string `yaml:"savings_active_threshold"`
	FreeWithdrawals        int    `yaml:"free_withdrawals"`
	ExcessWithdrawalFee    string `yaml:"excess_withdrawal_fee"`
}

// DefaultsConfig pre-fills the interactive shell prompts.
type DefaultsConfig struct {
	Kind           string `yaml:"kind"`
	InitialBalance string `yaml:"initial_balance"`
	AnnualRate     string `yaml:"annual_rate"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a tellerbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv resolves the config path (explicit path, then
// TELLERBOOK_CONFIG, then DefaultPath) and loads it. A missing file at the
// fallback path yields Default. TELLERBOOK_LOG_LEVEL overrides log.level.
func LoadFromEnv(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	cfg, err := Load(path)
	if err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching account.DefaultRules.
func Default() *Config {
	rules := account.DefaultRules()
	return &Config{
		Rules: RulesConfig{
			SavingsActiveThreshold: rules.SavingsActiveThreshold.String(),
			FreeWithdrawals:        rules.FreeWithdrawals,
			ExcessWithdrawalFee:    rules.ExcessWithdrawalFee.String(),
		},
		Defaults: DefaultsConfig{
			Kind:           string(account.KindSavings),
			InitialBalance: "10000",
			AnnualRate:     "5",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// AccountRules converts the rules section, validating every value.
func (c *Config) AccountRules() (account.Rules, error) {
	threshold, err := decimal.NewFromString(c.Rules.SavingsActiveThreshold)
	if err != nil {
		return account.Rules{}, fmt.Errorf("parsing savings_active_threshold %q: %w", c.Rules.SavingsActiveThreshold, err)
	}
	fee, err := decimal.NewFromString(c.Rules.ExcessWithdrawalFee)
	if err != nil {
		return account.Rules{}, fmt.Errorf("parsing excess_withdrawal_fee %q: %w", c.Rules.ExcessWithdrawalFee, err)
	}
	rules := account.Rules{
		SavingsActiveThreshold: threshold,
		FreeWithdrawals:        c.Rules.FreeWithdrawals,
		ExcessWithdrawalFee:    fee,
	}
	if err := rules.Validate(); err != nil {
		return account.Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}

// LogLevel parses log.level, defaulting to info when unset.
func (c *Config) LogLevel() (log.Level, error) {
	if strings.TrimSpace(c.Log.Level) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parsing log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}
