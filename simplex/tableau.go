package simplex

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Phase is the stage of a two-phase solve.
type Phase int

const (
	PhaseOne Phase = iota + 1
	PhaseTwo
)

func (p Phase) String() string {
	switch p {
	case PhaseOne:
		return "one"
	case PhaseTwo:
		return "two"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Rule is the sign convention of the objective rows. It decides which
// objective entries make a column eligible to enter the basis.
type Rule int

const (
	// MostPositive picks the largest positive entry. In phase two it
	// searches the real objective row, which sits above the auxiliary row,
	// and skips the artificial columns.
	MostPositive Rule = iota
	// MostNegative picks the most negative entry of the last row in both
	// phases.
	MostNegative
)

func (r Rule) String() string {
	switch r {
	case MostPositive:
		return "most-positive"
	case MostNegative:
		return "most-negative"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ParseRule maps the names returned by Rule.String back to a Rule.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "", MostPositive.String():
		return MostPositive, nil
	case MostNegative.String():
		return MostNegative, nil
	}
	return 0, errors.Wrapf(ErrInvalidOption, "unknown rule %q", s)
}

// Tableau is a dense row-major simplex tableau. The last column holds the
// right hand side and the last row is the active objective. When solving in
// two phases the auxiliary objective is appended after the real one.
//
// A Tableau is mutated in place and must not be shared between goroutines.
type Tableau struct {
	rows, cols  int
	artificials int
	data        []float64

	phase  Phase
	rule   Rule
	tol    float64
	tracer Tracer
	pivots int
}

// New allocates a rows×cols tableau of zeros in phase one. Most callers
// start with zero rows and grow the tableau with AddLine.
//
// The tableau compares against DefaultTolerance unless WithTolerance says
// otherwise: cells with |v| <= tolerance count as zero in every sign test,
// the ratio test and solution extraction.
func New(rows, cols, artificials int, options ...Option) (*Tableau, error) {
	if rows < 0 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidShape, "%dx%d", rows, cols)
	}
	if artificials < 0 || artificials > cols-1 {
		return nil, errors.Wrapf(ErrInvalidShape, "%d artificial columns in %d variable columns", artificials, cols-1)
	}

	t := &Tableau{
		rows:        rows,
		cols:        cols,
		artificials: artificials,
		data:        make([]float64, rows*cols),
		phase:       PhaseOne,
		rule:        MostPositive,
		tol:         DefaultTolerance,
	}
	for _, option := range append(append([]Option(nil), options...), defaults...) {
		if err := option(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tableau) Rows() int        { return t.rows }
func (t *Tableau) Cols() int        { return t.cols }
func (t *Tableau) Artificials() int { return t.artificials }
func (t *Tableau) Phase() Phase     { return t.phase }
func (t *Tableau) Rule() Rule       { return t.rule }

// Pivots returns the number of pivots applied since the tableau was created.
func (t *Tableau) Pivots() int { return t.pivots }

func (t *Tableau) offset(row, col int) int {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		panic(mat.ErrIndexOutOfRange)
	}
	return row*t.cols + col
}

// Get returns the cell at (row, col). It panics if the cell is outside the
// tableau.
func (t *Tableau) Get(row, col int) float64 {
	return t.data[t.offset(row, col)]
}

// Set stores v at (row, col). It panics if the cell is outside the tableau.
func (t *Tableau) Set(row, col int, v float64) {
	t.data[t.offset(row, col)] = v
}

// row returns the backing slice of row i.
func (t *Tableau) row(i int) []float64 {
	return t.data[i*t.cols : (i+1)*t.cols]
}

// Row returns a copy of row i.
func (t *Tableau) Row(i int) []float64 {
	if i < 0 || i >= t.rows {
		panic(mat.ErrRowAccess)
	}
	out := make([]float64, t.cols)
	copy(out, t.row(i))
	return out
}

// AddLine appends a copy of line as a new bottom row. The tableau is left
// untouched if the length of line differs from the column count.
func (t *Tableau) AddLine(line []float64) (*Tableau, error) {
	if len(line) != t.cols {
		return t, errors.Wrapf(ErrShapeMismatch, "got %d values, want %d", len(line), t.cols)
	}
	t.data = append(t.data, line...)
	t.rows++
	return t, nil
}

// PhaseTwo switches the tableau to phase two. The caller is responsible for
// checking that phase one reached a zero auxiliary objective.
func (t *Tableau) PhaseTwo() {
	t.phase = PhaseTwo
}

// Matrix returns a copy of the grid, or nil while the tableau has no rows.
func (t *Tableau) Matrix() *mat.Dense {
	if t.rows == 0 {
		return nil
	}
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return mat.NewDense(t.rows, t.cols, data)
}

func (t *Tableau) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tableau %dx%d:\n", t.rows, t.cols)
	if m := t.Matrix(); m != nil {
		fmt.Fprintf(&b, "%.2f\n", mat.Formatted(m, mat.Squeeze()))
	}
	return b.String()
}
