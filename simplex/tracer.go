package simplex

import "github.com/sirupsen/logrus"

// Tracer observes the pivots a Tableau applies and the reason each Solve
// call stopped.
type Tracer interface {
	Pivot(phase Phase, row, col int)
	Halt(phase Phase, status Status, pivots int)
}

type DefaultTracer struct{}

func (DefaultTracer) Pivot(_ Phase, _, _ int) {
}

func (DefaultTracer) Halt(_ Phase, _ Status, _ int) {
}

// LoggingTracer writes every event to Logger at debug level.
type LoggingTracer struct {
	Logger logrus.FieldLogger
}

func (t LoggingTracer) Pivot(phase Phase, row, col int) {
	t.Logger.WithFields(logrus.Fields{
		"phase": phase,
		"row":   row,
		"col":   col,
	}).Debug("pivot")
}

func (t LoggingTracer) Halt(phase Phase, status Status, pivots int) {
	t.Logger.WithFields(logrus.Fields{
		"phase":  phase,
		"status": status,
		"pivots": pivots,
	}).Debug("solve halted")
}

// Tracers fans events out to every tracer in order.
type Tracers []Tracer

func (ts Tracers) Pivot(phase Phase, row, col int) {
	for _, t := range ts {
		t.Pivot(phase, row, col)
	}
}

func (ts Tracers) Halt(phase Phase, status Status, pivots int) {
	for _, t := range ts {
		t.Halt(phase, status, pivots)
	}
}
