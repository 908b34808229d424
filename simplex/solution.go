package simplex

import "math"

// Solution reads the basic feasible solution off the tableau. A variable
// column that holds exactly one non-zero entry is basic and takes the right
// hand side of that row; every other variable is 0. The result has one value
// per variable column, in column order.
func (t *Tableau) Solution() []float64 {
	rhs := t.cols - 1
	solution := make([]float64, rhs)
	for col := 0; col < rhs; col++ {
		var zeroes, nonZeroes int
		var val float64
		for row := 0; row < t.rows; row++ {
			if math.Abs(t.Get(row, col)) <= t.tol {
				zeroes++
				continue
			}
			nonZeroes++
			val = t.Get(row, rhs)
		}
		if nonZeroes == 1 && zeroes == t.rows-1 {
			solution[col] = val
		}
	}
	return solution
}

// HasSolution is a best-effort sanity check, not a feasibility oracle. It
// reports false when a constraint row holds more than one entry equal to
// exactly 1 among the first numVars-1 columns. It does not look at the
// auxiliary objective, the sign of the right hand side or any later column.
func (t *Tableau) HasSolution(numVars int) bool {
	end := min(max(numVars-1, 0), t.cols)
	for row := 0; row < t.rows-1; row++ {
		count := 0
		for _, x := range t.row(row)[:end] {
			if x == 1.0 {
				count++
			}
		}
		if count > 1 {
			return false
		}
	}
	return true
}
