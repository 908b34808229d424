package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

func TestNew(t *testing.T) {
	tab, err := simplex.New(2, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Rows())
	assert.Equal(t, 3, tab.Cols())
	assert.Equal(t, 0, tab.Artificials())
	assert.Equal(t, simplex.PhaseOne, tab.Phase())
	assert.Equal(t, simplex.MostPositive, tab.Rule())
	assert.Equal(t, mat.NewDense(2, 3, nil), tab.Matrix())
}

func TestNewInvalidShape(t *testing.T) {
	for _, tt := range []struct {
		name                    string
		rows, cols, artificials int
	}{
		{name: "negative rows", rows: -1, cols: 3},
		{name: "no columns", rows: 0, cols: 0},
		{name: "negative artificials", rows: 0, cols: 3, artificials: -1},
		{name: "artificials cover rhs", rows: 0, cols: 3, artificials: 3},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := simplex.New(tt.rows, tt.cols, tt.artificials)
			require.ErrorIs(t, err, simplex.ErrInvalidShape)
		})
	}
}

func TestNewInvalidOption(t *testing.T) {
	_, err := simplex.New(0, 3, 0, simplex.WithTolerance(-1))
	require.ErrorIs(t, err, simplex.ErrInvalidOption)

	_, err = simplex.New(0, 3, 0, simplex.WithRule(simplex.Rule(7)))
	require.ErrorIs(t, err, simplex.ErrInvalidOption)
}

func TestNewLeavesCallerOptions(t *testing.T) {
	opts := make([]simplex.Option, 1, 4)
	opts[0] = simplex.WithRule(simplex.MostNegative)

	tab, err := simplex.New(0, 3, 0, opts...)
	require.NoError(t, err)
	assert.Equal(t, simplex.MostNegative, tab.Rule())
	for _, o := range opts[1:cap(opts)] {
		assert.Nil(t, o)
	}
}

func TestAddLine(t *testing.T) {
	tab, err := simplex.New(0, 3, 0)
	require.NoError(t, err)
	assert.Nil(t, tab.Matrix())

	line := []float64{1, 2, 3}
	got, err := tab.AddLine(line)
	require.NoError(t, err)
	assert.Same(t, tab, got)
	assert.Equal(t, 1, tab.Rows())
	assert.Equal(t, []float64{1, 2, 3}, tab.Row(0))

	// the tableau keeps its own copy
	line[0] = 9
	assert.Equal(t, 1.0, tab.Get(0, 0))

	_, err = tab.AddLine([]float64{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, tab.Rows())
	assert.Equal(t, []float64{4, 5, 6}, tab.Row(1))
}

func TestAddLineShapeMismatch(t *testing.T) {
	tab := furnitureTableau(t)
	before := tab.Matrix()

	for _, line := range [][]float64{nil, {1, 2}, {1, 2, 3, 4, 5, 6, 7}} {
		_, err := tab.AddLine(line)
		require.ErrorIs(t, err, simplex.ErrShapeMismatch)
		assert.Equal(t, 3, tab.Rows())
		assert.Equal(t, 6, tab.Cols())
		assert.Equal(t, before, tab.Matrix())
	}
}

func TestGetSet(t *testing.T) {
	tab, err := simplex.New(2, 3, 0)
	require.NoError(t, err)

	tab.Set(1, 2, 7.5)
	assert.Equal(t, 7.5, tab.Get(1, 2))
	assert.Equal(t, 0.0, tab.Get(0, 2))

	assert.PanicsWithValue(t, mat.ErrIndexOutOfRange, func() { tab.Get(2, 0) })
	assert.PanicsWithValue(t, mat.ErrIndexOutOfRange, func() { tab.Get(0, 3) })
	assert.PanicsWithValue(t, mat.ErrIndexOutOfRange, func() { tab.Set(-1, 0, 1) })
	assert.PanicsWithValue(t, mat.ErrRowAccess, func() { tab.Row(5) })
}

func TestPhaseTwo(t *testing.T) {
	tab := loadTableau(t)
	assert.Equal(t, simplex.PhaseOne, tab.Phase())
	tab.PhaseTwo()
	assert.Equal(t, simplex.PhaseTwo, tab.Phase())
	tab.PhaseTwo()
	assert.Equal(t, simplex.PhaseTwo, tab.Phase())
}

func TestString(t *testing.T) {
	tab, err := simplex.New(0, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Tableau 0x2:\n", tab.String())

	tab = furnitureTableau(t)
	s := tab.String()
	assert.Contains(t, s, "Tableau 3x6:\n")
	assert.Contains(t, s, "-40.00")
	assert.Contains(t, s, "16.00")
}

func TestParseRule(t *testing.T) {
	for _, r := range []simplex.Rule{simplex.MostPositive, simplex.MostNegative} {
		got, err := simplex.ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := simplex.ParseRule("")
	require.NoError(t, err)
	assert.Equal(t, simplex.MostPositive, got)

	_, err = simplex.ParseRule("bland")
	require.ErrorIs(t, err, simplex.ErrInvalidOption)
}
