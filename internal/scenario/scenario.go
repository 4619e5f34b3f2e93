// Package scenario runs scripted sequences of account operations, the
// non-interactive counterpart of the shell.
package scenario

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// Scenario is a named set of account scripts, run in order.
type Scenario struct {
	Name    string
	Scripts []Script
}

// Script opens one account and applies its steps to it.
type Script struct {
	Label          string
	Kind           account.Kind
	InitialBalance decimal.Decimal
	AnnualRate     decimal.Decimal
	Steps          []Step
}

// Step is one operation. Amount is only used by deposit and withdraw.
type Step struct {
	Op     account.Op
	Amount decimal.Decimal
}

func (s Step) String() string {
	if s.Op == account.OpDeposit || s.Op == account.OpWithdraw {
		return fmt.Sprintf("%s %s", s.Op, s.Amount.StringFixed(2))
	}
	return string(s.Op)
}

// ParseOp resolves a case-insensitive operation name.
func ParseOp(s string) (account.Op, error) {
	switch op := account.Op(strings.ToLower(strings.TrimSpace(s))); op {
	case account.OpDeposit, account.OpWithdraw, account.OpStatement, account.OpSummary:
		return op, nil
	default:
		return "", fmt.Errorf("unknown operation %q", s)
	}
}

// newStep builds a Step from its text form. Deposit and withdraw require an
// amount; the others ignore it.
func newStep(opText, amountText string) (Step, error) {
	op, err := ParseOp(opText)
	if err != nil {
		return Step{}, err
	}
	step := Step{Op: op}
	if op != account.OpDeposit && op != account.OpWithdraw {
		return step, nil
	}
	amountText = strings.TrimSpace(amountText)
	if amountText == "" {
		return Step{}, fmt.Errorf("%s requires an amount", op)
	}
	step.Amount, err = decimal.NewFromString(amountText)
	if err != nil {
		return Step{}, fmt.Errorf("parsing amount %q: %w", amountText, err)
	}
	return step, nil
}

func parseDecimal(field, text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, text, err)
	}
	return d, nil
}

// Parser converts a scenario file into a Scenario.
type Parser interface {
	Parse(r io.Reader) (*Scenario, error)
	Format() string
	Extensions() []string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
	byExt   map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser), byExt: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate scenario format: " + key)
	}
	r.parsers[key] = p
	for _, ext := range p.Extensions() {
		r.byExt[strings.ToLower(ext)] = p
	}
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForPath returns the parser registered for the file's extension, or nil.
func (r *Registry) ForPath(path string) Parser {
	return r.byExt[strings.ToLower(filepath.Ext(path))]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&YAMLParser{})
	r.Register(&CSVParser{})
	return r
}

// Load parses the scenario file at path. An empty format selects the parser
// by file extension.
func (r *Registry) Load(path, format string) (*Scenario, error) {
	var p Parser
	if format != "" {
		p = r.Get(format)
		if p == nil {
			return nil, fmt.Errorf("unknown scenario format %q", format)
		}
	} else {
		p = r.ForPath(path)
		if p == nil {
			return nil, fmt.Errorf("cannot infer scenario format from %q, use --format", filepath.Base(path))
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	sc, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s scenario %s: %w", p.Format(), filepath.Base(path), err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}
