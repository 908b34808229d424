package driver

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ovidiu-ionescu/simple-simplex-lib/model"
	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

var (
	// ErrInfeasible is returned when phase one stops with a non-zero
	// auxiliary objective.
	ErrInfeasible = errors.New("problem is infeasible")
	ErrUnbounded  = errors.New("problem is unbounded")
)

type Assignment struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Result struct {
	Status    string       `json:"status"`
	Objective float64      `json:"objective"`
	Variables []Assignment `json:"variables"`
	Pivots    int          `json:"pivots"`
	// HasSolution is the tableau's best-effort consistency check.
	HasSolution bool `json:"hasSolution"`

	Tableau *simplex.Tableau `json:"-"`
}

// Driver runs a problem through one or both phases.
type Driver struct {
	logger    logrus.FieldLogger
	tolerance float64
	options   []simplex.Option
}

func New(logger logrus.FieldLogger, tolerance float64, options ...simplex.Option) *Driver {
	return &Driver{
		logger:    logger,
		tolerance: tolerance,
		options:   append([]simplex.Option{simplex.WithTolerance(tolerance)}, options...),
	}
}

func (d *Driver) Run(p *model.Problem) (*Result, error) {
	t, err := p.Build(d.options...)
	if err != nil {
		return nil, err
	}
	log := d.logger.WithFields(logrus.Fields{
		"rows": t.Rows(),
		"cols": t.Cols(),
		"rule": t.Rule(),
	})

	status := t.Solve()
	if p.TwoPhase() {
		aux := t.ObjectiveValue()
		log.WithFields(logrus.Fields{"status": status, "auxiliary": aux, "pivots": t.Pivots()}).Info("phase one finished")
		if status == simplex.StatusUnbounded {
			return nil, errors.Wrap(ErrUnbounded, "auxiliary objective")
		}
		if math.Abs(aux) > d.tolerance {
			return nil, errors.Wrapf(ErrInfeasible, "auxiliary objective stopped at %v", aux)
		}
		t.PhaseTwo()
		status = t.Solve()
	}
	log.WithFields(logrus.Fields{"status": status, "pivots": t.Pivots()}).Info("solve finished")
	if status == simplex.StatusUnbounded {
		return nil, ErrUnbounded
	}

	solution := t.Solution()
	r := &Result{
		Status:      status.String(),
		Objective:   t.ObjectiveValue(),
		Pivots:      t.Pivots(),
		HasSolution: t.HasSolution(p.NumVars()),
		Tableau:     t,
	}
	for c, n := 0, p.NumVars(); c < n; c++ {
		r.Variables = append(r.Variables, Assignment{Name: p.VariableName(c), Value: solution[c]})
	}
	return r, nil
}
