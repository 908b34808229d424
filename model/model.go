package model

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

var ErrInvalidProblem = errors.New("invalid problem")

// Problem is a tableau laid out by the caller: every row already carries its
// slack, surplus and artificial columns followed by the right hand side.
type Problem struct {
	//Rule objective sign convention, see simplex.ParseRule
	Rule string `json:"rule,omitempty"`

	//Artificials number of artificial columns, placed right before the rhs
	Artificials int `json:"artificials,omitempty"`

	//Variables optional names of the leading structural columns
	Variables []string `json:"variables,omitempty"`

	Constraints [][]float64 `json:"constraints"`

	//Objective the real objective row
	Objective []float64 `json:"objective"`

	//Auxiliary sum of the artificial rows, only set for two-phase problems
	Auxiliary []float64 `json:"auxiliary,omitempty"`
}

// NumCols is the row length including the rhs column.
func (p *Problem) NumCols() int {
	return len(p.Objective)
}

func (p *Problem) NumRows() int {
	n := len(p.Constraints) + 1
	if p.TwoPhase() {
		n++
	}
	return n
}

func (p *Problem) TwoPhase() bool {
	return p.Auxiliary != nil
}

// NumVars is the number of structural variables reported in a solution.
func (p *Problem) NumVars() int {
	if len(p.Variables) > 0 {
		return len(p.Variables)
	}
	return p.NumCols() - 1
}

// VariableName returns the configured name of column c, or x<c+1>.
func (p *Problem) VariableName(c int) string {
	if c < len(p.Variables) {
		return p.Variables[c]
	}
	return fmt.Sprintf("x%d", c+1)
}

func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidProblem, format, args...)
}

// Validate checks the layout conventions New and AddLine would reject, and
// the few this package relies on itself.
func (p *Problem) Validate() error {
	if _, err := simplex.ParseRule(p.Rule); err != nil {
		return invalidf("rule %q", p.Rule)
	}
	if p.NumCols() < 2 {
		return invalidf("objective needs at least one variable and the rhs")
	}
	if len(p.Constraints) == 0 {
		return invalidf("no constraints")
	}
	for i, row := range p.Constraints {
		if len(row) != p.NumCols() {
			return invalidf("mismatch number of columns in constraint %d: %d, want %d", i, len(row), p.NumCols())
		}
	}
	if p.TwoPhase() && len(p.Auxiliary) != p.NumCols() {
		return invalidf("mismatch number of columns in auxiliary objective: %d, want %d", len(p.Auxiliary), p.NumCols())
	}
	if p.Artificials < 0 || p.Artificials > p.NumCols()-1 {
		return invalidf("%d artificial columns in %d variable columns", p.Artificials, p.NumCols()-1)
	}
	if p.TwoPhase() && p.Rule == simplex.MostNegative.String() {
		return invalidf("rule %s reads only the last row and cannot solve an auxiliary objective", p.Rule)
	}
	if p.Artificials > 0 && !p.TwoPhase() {
		return invalidf("artificial columns without an auxiliary objective")
	}
	if len(p.Variables) > p.NumCols()-1 {
		return invalidf("%d variable names for %d columns", len(p.Variables), p.NumCols()-1)
	}
	return nil
}

// Build validates the problem and appends its rows to a new tableau:
// constraints, the objective, then the auxiliary objective if any.
func (p *Problem) Build(options ...simplex.Option) (*simplex.Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rule, err := simplex.ParseRule(p.Rule)
	if err != nil {
		return nil, err
	}

	t, err := simplex.New(0, p.NumCols(), p.Artificials, append([]simplex.Option{simplex.WithRule(rule)}, options...)...)
	if err != nil {
		return nil, err
	}
	for _, row := range p.rows() {
		if _, err := t.AddLine(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *Problem) rows() [][]float64 {
	rows := make([][]float64, 0, p.NumRows())
	rows = append(rows, p.Constraints...)
	rows = append(rows, p.Objective)
	if p.TwoPhase() {
		rows = append(rows, p.Auxiliary)
	}
	return rows
}
