package cmd

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ovidiu-ionescu/simple-simplex-lib/config"
	"github.com/ovidiu-ionescu/simple-simplex-lib/driver"
	"github.com/ovidiu-ionescu/simple-simplex-lib/instance"
	"github.com/ovidiu-ionescu/simple-simplex-lib/metrics"
	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the tableau stored in a YAML or JSON problem file",
		Long: `Solve loads a tableau whose rows already carry their slack, surplus and
artificial columns. Two-phase problems list the auxiliary objective after
the real one; phase one must drive it to zero before phase two starts.`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	config.AddFlags(cmd.Flags())
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, c)
	if err != nil {
		return err
	}

	p, err := instance.NewReader(args[0]).ConstructProblemFromFile()
	if err != nil {
		return err
	}

	tracers := simplex.Tracers{simplex.LoggingTracer{Logger: logger}}
	var reg *prometheus.Registry
	if c.MetricsFile != "" {
		reg = prometheus.NewRegistry()
		collector, err := metrics.NewCollector(reg)
		if err != nil {
			return err
		}
		tracers = append(tracers, collector)
	}

	result, runErr := driver.New(logger.WithField("file", args[0]), c.Tolerance, simplex.WithTracer(tracers)).Run(p)
	if reg != nil {
		if err := metrics.WriteTextfile(c.MetricsFile, reg); err != nil {
			logger.WithError(err).Error("metrics not written")
		}
	}
	if runErr != nil {
		return runErr
	}
	if !result.HasSolution {
		logger.Warn("solution check failed: a constraint row holds more than one unit entry")
	}
	return printResult(cmd.OutOrStdout(), c, result)
}

func printResult(w io.Writer, c *config.Config, r *driver.Result) error {
	if c.Output == "yaml" {
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	fmt.Fprintf(w, "status: %s\n", r.Status)
	fmt.Fprintf(w, "objective: %v\n", r.Objective)
	for _, a := range r.Variables {
		fmt.Fprintf(w, "%s = %v\n", a.Name, a.Value)
	}
	fmt.Fprintf(w, "pivots: %d\n", r.Pivots)
	if c.ShowTableau {
		fmt.Fprint(w, r.Tableau)
	}
	return nil
}
