package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

func build(t *testing.T, cols, artificials int, rows [][]float64, options ...simplex.Option) *simplex.Tableau {
	t.Helper()
	tab, err := simplex.New(0, cols, artificials, options...)
	require.NoError(t, err)
	for _, r := range rows {
		_, err := tab.AddLine(r)
		require.NoError(t, err)
	}
	return tab
}

// maximize 40x + 30y subject to x + y <= 12, 2x + y <= 16. The objective
// row carries a z column and uses the most negative convention.
func furnitureTableau(t *testing.T, options ...simplex.Option) *simplex.Tableau {
	return build(t, 6, 0, [][]float64{
		{1, 1, 1, 0, 0, 12},
		{2, 1, 0, 1, 0, 16},
		{-40, -30, 0, 0, 1, 0},
	}, append([]simplex.Option{simplex.WithRule(simplex.MostNegative)}, options...)...)
}

// minimize x + 2y subject to
//
//	x <= 1.5
//	y <= 1
//	x >= 1
//	x + y >= 2
//
// Columns: x, y, two slacks, two surplus, two artificials, rhs. The real
// objective is followed by the auxiliary objective.
func loadTableau(t *testing.T, options ...simplex.Option) *simplex.Tableau {
	return build(t, 9, 2, [][]float64{
		{1, 0, 1, 0, 0, 0, 0, 0, 1.5},
		{0, 1, 0, 1, 0, 0, 0, 0, 1.0},
		{1, 0, 0, 0, -1, 0, 1, 0, 1.0},
		{1, 1, 0, 0, 0, -1, 0, 1, 2.0},
		{-1, -2, 0, 0, 0, 0, 0, 0, 0},
		{2, 1, 0, 0, -1, -1, 0, 0, 3.0},
	}, options...)
}

type event struct {
	phase    simplex.Phase
	row, col int
	status   simplex.Status
	pivots   int
	halt     bool
}

type recordingTracer struct {
	events []event
}

func (r *recordingTracer) Pivot(phase simplex.Phase, row, col int) {
	r.events = append(r.events, event{phase: phase, row: row, col: col})
}

func (r *recordingTracer) Halt(phase simplex.Phase, status simplex.Status, pivots int) {
	r.events = append(r.events, event{phase: phase, status: status, pivots: pivots, halt: true})
}
