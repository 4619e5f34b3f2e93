package scenario

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tellerbook-dev/tellerbook/internal/account"
)

// Header is the CSV header for scenario files.
const Header = "account,kind,initial_balance,annual_rate,op,amount"

const (
	numFields  = 6
	colAccount = 0
	colKind    = 1
	colBalance = 2
	colRate    = 3
	colOp      = 4
	colAmount  = 5
)

// CSVParser reads one operation per row. The first row for an account label
// opens it with that row's kind, initial_balance and annual_rate; later rows
// for the label may leave those columns blank. A row with an empty op only
// opens the account.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return "csv" }

// Extensions returns the file extensions handled by the parser.
func (p *CSVParser) Extensions() []string { return []string{".csv"} }

// Parse reads a CSV scenario.
func (p *CSVParser) Parse(r io.Reader) (*Scenario, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading scenario CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, errors.New("scenario has no accounts")
	}

	sc := &Scenario{}
	index := make(map[string]int)
	for i, rec := range records[1:] {
		row := i + 2
		label := strings.TrimSpace(rec[colAccount])
		if label == "" {
			return nil, fmt.Errorf("row %d: missing account label", row)
		}

		pos, ok := index[label]
		if !ok {
			script, err := openScript(label, rec)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
			sc.Scripts = append(sc.Scripts, script)
			pos = len(sc.Scripts) - 1
			index[label] = pos
		}

		if strings.TrimSpace(rec[colOp]) == "" {
			continue
		}
		step, err := newStep(rec[colOp], rec[colAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		sc.Scripts[pos].Steps = append(sc.Scripts[pos].Steps, step)
	}
	return sc, nil
}

func openScript(label string, rec []string) (Script, error) {
	kind, err := account.ParseKind(rec[colKind])
	if err != nil {
		return Script{}, err
	}
	balance, err := parseDecimal("initial_balance", rec[colBalance])
	if err != nil {
		return Script{}, err
	}
	rate, err := parseDecimal("annual_rate", rec[colRate])
	if err != nil {
		return Script{}, err
	}
	return Script{Label: label, Kind: kind, InitialBalance: balance, AnnualRate: rate}, nil
}

// WriteScenario writes sc in the CSV scenario format.
func WriteScenario(w io.Writer, sc *Scenario) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, script := range sc.Scripts {
		open := []string{script.Label, string(script.Kind), script.InitialBalance.String(), script.AnnualRate.String(), "", ""}
		if len(script.Steps) == 0 {
			if err := cw.Write(open); err != nil {
				return fmt.Errorf("writing %s: %w", script.Label, err)
			}
			continue
		}
		for i, step := range script.Steps {
			row := []string{script.Label, "", "", "", string(step.Op), ""}
			if i == 0 {
				copy(row, open[:colOp])
			}
			if step.Op == account.OpDeposit || step.Op == account.OpWithdraw {
				row[colAmount] = step.Amount.String()
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing %s step %d: %w", script.Label, i+1, err)
			}
		}
	}
	return cw.Error()
}
