package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

const namespace = "simplex"

// Collector counts the pivots and solve outcomes of the tableaus it traces.
type Collector struct {
	pivots      *prometheus.CounterVec
	solves      *prometheus.CounterVec
	solvePivots *prometheus.HistogramVec
}

var _ simplex.Tracer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		pivots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pivots_total",
			Help:      "Pivots applied, by phase.",
		}, []string{"phase"}),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Solve calls, by phase and halting status.",
		}, []string{"phase", "status"}),
		solvePivots: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_pivots",
			Help:      "Pivots applied by a single solve call.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"phase"}),
	}
	for _, m := range []prometheus.Collector{c.pivots, c.solves, c.solvePivots} {
		if err := reg.Register(m); err != nil {
			return nil, errors.Wrap(err, "registering simplex metrics")
		}
	}
	return c, nil
}

func (c *Collector) Pivot(phase simplex.Phase, _, _ int) {
	c.pivots.WithLabelValues(phase.String()).Inc()
}

func (c *Collector) Halt(phase simplex.Phase, status simplex.Status, pivots int) {
	c.solves.WithLabelValues(phase.String(), status.String()).Inc()
	c.solvePivots.WithLabelValues(phase.String()).Observe(float64(pivots))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, g), "writing metrics to %s", path)
}
