package scenario

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// YAMLParser reads scenarios of the form:
//
//	name: walkthrough
//	accounts:
//	  - label: savings
//	    kind: savings
//	    initial_balance: "12000"
//	    annual_rate: "5"
//	    steps:
//	      - op: withdraw
//	        amount: "2000"
//	      - op: statement
type YAMLParser struct{}

type yamlScenario struct {
	Name     string       `yaml:"name"`
	Accounts []yamlScript `yaml:"accounts"`
}

type yamlScript struct {
	Label          string     `yaml:"label"`
	Kind           string     `yaml:"kind"`
	InitialBalance string     `yaml:"initial_balance"`
	AnnualRate     string     `yaml:"annual_rate"`
	Steps          []yamlStep `yaml:"steps"`
}

type yamlStep struct {
	Op     string `yaml:"op"`
	Amount string `yaml:"amount"`
}

// Format returns the parser name.
func (p *YAMLParser) Format() string { return "yaml" }

// Extensions returns the file extensions handled by the parser.
func (p *YAMLParser) Extensions() []string { return []string{".yaml", ".yml"} }

// Parse decodes a YAML scenario.
func (p *YAMLParser) Parse(r io.Reader) (*Scenario, error) {
	var doc yamlScenario
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scenario")
		}
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	sc := &Scenario{Name: doc.Name}
	for i, ys := range doc.Accounts {
		script, err := ys.script()
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i+1, err)
		}
		sc.Scripts = append(sc.Scripts, script)
	}
	if len(sc.Scripts) == 0 {
		return nil, errors.New("scenario has no accounts")
	}
	return sc, nil
}

func (ys yamlScript) script() (Script, error) {
	kind, err := account.ParseKind(ys.Kind)
	if err != nil {
		return Script{}, err
	}
	balance, err := parseDecimal("initial_balance", ys.InitialBalance)
	if err != nil {
		return Script{}, err
	}
	rate, err := parseDecimal("annual_rate", ys.AnnualRate)
	if err != nil {
		return Script{}, err
	}

	label := ys.Label
	if label == "" {
		label = string(kind)
	}
	script := Script{Label: label, Kind: kind, InitialBalance: balance, AnnualRate: rate}
	for j, st := range ys.Steps {
		step, err := newStep(st.Op, st.Amount)
		if err != nil {
			return Script{}, fmt.Errorf("step %d: %w", j+1, err)
		}
		script.Steps = append(script.Steps, step)
	}
	return script, nil
}
