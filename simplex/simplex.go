package simplex

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Status reports the outcome of a pivot search.
type Status int

const (
	// StatusPivot means a pivot cell was found and the objective can improve.
	StatusPivot Status = iota
	// StatusOptimal means no column can enter the basis.
	StatusOptimal
	// StatusUnbounded means a column can enter but no row can leave.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusPivot:
		return "pivot"
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Step is the result of Next. Row and Col are only meaningful when Status
// is StatusPivot.
type Step struct {
	Status Status
	Row    int
	Col    int
}

// objectiveRow is the row searched for an entering column and read by
// ObjectiveValue. It is -1 when the tableau is too short to have one.
func (t *Tableau) objectiveRow() int {
	if t.rule == MostPositive && t.phase == PhaseTwo {
		return t.rows - 2
	}
	return t.rows - 1
}

// enteringWindow returns the objective row and the exclusive upper bound of
// the columns eligible to enter.
func (t *Tableau) enteringWindow() (row, end int) {
	row, end = t.objectiveRow(), t.cols-1
	if t.rule == MostPositive && t.phase == PhaseTwo {
		end -= t.artificials
	}
	return row, max(end, 0)
}

// EnteringColumn selects the column to bring into the basis following the
// tableau rule. Ties keep the lowest column. ok is false when the active
// objective is optimal.
func (t *Tableau) EnteringColumn() (col int, value float64, ok bool) {
	row, end := t.enteringWindow()
	if row < 0 {
		return 0, 0, false
	}
	r := t.row(row)[:end]
	col = -1
	for j, x := range r {
		switch t.rule {
		case MostNegative:
			if x < -t.tol && (col < 0 || x < value) {
				col, value = j, x
			}
		default:
			if x > t.tol && (col < 0 || x > value) {
				col, value = j, x
			}
		}
	}
	if col < 0 {
		return 0, 0, false
	}
	return col, value, true
}

// LeavingRow runs the ratio test on column col. Only rows with a positive
// entry in col are eligible and the smallest rhs/entry ratio wins, ties
// keeping the lowest row. Phase one skips the bottom row and rows with a
// negative right hand side; phase two scans every row.
func (t *Tableau) LeavingRow(col int) (row int, ok bool) {
	limit := 1
	if t.phase == PhaseTwo {
		limit = 0
	}
	rhs := t.cols - 1

	row = -1
	var minRatio float64
	for i := 0; i < t.rows-limit; i++ {
		a, b := t.Get(i, col), t.Get(i, rhs)
		if a <= t.tol {
			continue
		}
		if t.phase == PhaseOne && b < 0 {
			continue
		}
		ratio := b / a
		if row < 0 || ratio < minRatio {
			row, minRatio = i, ratio
		}
	}
	return row, row >= 0
}

// Next finds the next pivot cell without applying it.
func (t *Tableau) Next() Step {
	col, _, ok := t.EnteringColumn()
	if !ok {
		return Step{Status: StatusOptimal}
	}
	row, ok := t.LeavingRow(col)
	if !ok {
		return Step{Status: StatusUnbounded, Col: col}
	}
	return Step{Status: StatusPivot, Row: row, Col: col}
}

// Pivot performs a Gauss-Jordan elimination step on (row, col): the pivot
// row is divided by the pivot value and col is cleared from every other row.
func (t *Tableau) Pivot(row, col int) error {
	pv := t.Get(row, col)
	if math.Abs(pv) <= t.tol {
		return errors.Wrapf(ErrZeroPivot, "cell (%d,%d)", row, col)
	}

	pr := t.row(row)
	for k := range pr {
		pr[k] /= pv
	}
	for i := 0; i < t.rows; i++ {
		if i == row {
			continue
		}
		r := t.row(i)
		if f := r[col]; f != 0 {
			floats.AddScaled(r, -f, pr)
		}
	}

	t.pivots++
	t.tracer.Pivot(t.phase, row, col)
	return nil
}

// Solve pivots until the active objective is optimal or unbounded and
// returns which of the two stopped it. It never changes phase; a two-phase
// caller runs Solve, checks the auxiliary objective, calls PhaseTwo and runs
// Solve again.
func (t *Tableau) Solve() Status {
	start := t.pivots
	for {
		step := t.Next()
		if step.Status != StatusPivot {
			t.tracer.Halt(t.phase, step.Status, t.pivots-start)
			return step.Status
		}
		// Next only selects entries above the tolerance.
		if err := t.Pivot(step.Row, step.Col); err != nil {
			panic(err)
		}
	}
}

// ObjectiveValue returns the right hand side of the active objective row:
// the auxiliary sum in phase one of a two-phase solve, the real objective
// otherwise. It is 0 for a tableau without rows.
func (t *Tableau) ObjectiveValue() float64 {
	row := t.objectiveRow()
	if row < 0 {
		return 0
	}
	return t.Get(row, t.cols-1)
}
