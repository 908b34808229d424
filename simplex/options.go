package simplex

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultTolerance is the magnitude below which a cell is treated as zero.
const DefaultTolerance = 1e-9

type Option func(t *Tableau) error

// WithRule selects the sign convention used to pick the entering column.
// An entry is a candidate only when its magnitude exceeds the tolerance, so
// under DefaultTolerance a coefficient of 5e-10 never enters. Combine with
// WithTolerance(0) for strict sign tests.
func WithRule(r Rule) Option {
	return func(t *Tableau) error {
		if r != MostPositive && r != MostNegative {
			return errors.Wrapf(ErrInvalidOption, "unknown rule %d", r)
		}
		t.rule = r
		return nil
	}
}

// WithTolerance sets the zero tolerance. A tolerance of 0 makes every sign
// test and unit-column test exact.
func WithTolerance(tol float64) Option {
	return func(t *Tableau) error {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			return errors.Wrapf(ErrInvalidOption, "tolerance %v", tol)
		}
		t.tol = tol
		return nil
	}
}

func WithTracer(tr Tracer) Option {
	return func(t *Tableau) error {
		t.tracer = tr
		return nil
	}
}

var defaults = []Option{
	func(t *Tableau) error {
		if t.tracer == nil {
			t.tracer = DefaultTracer{}
		}
		return nil
	},
}
