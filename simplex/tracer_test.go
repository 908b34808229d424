package simplex_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

func TestLoggingTracer(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	tab := furnitureTableau(t, simplex.WithTracer(simplex.LoggingTracer{Logger: logger}))
	tab.Solve()

	entries := hook.AllEntries()
	require.Len(t, entries, 3)

	assert.Equal(t, "pivot", entries[0].Message)
	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, logrus.Fields{"phase": simplex.PhaseOne, "row": 1, "col": 0}, entries[0].Data)

	assert.Equal(t, "solve halted", entries[2].Message)
	assert.Equal(t, simplex.StatusOptimal, entries[2].Data["status"])
	assert.Equal(t, 2, entries[2].Data["pivots"])
}

func TestLoggingTracerRespectsLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.InfoLevel)

	tab := furnitureTableau(t, simplex.WithTracer(simplex.LoggingTracer{Logger: logger}))
	tab.Solve()
	assert.Empty(t, hook.AllEntries())
}
