package cmd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ovidiu-ionescu/simple-simplex-lib/config"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "simplex",
		Short:         "Two-phase simplex over pre-built tableaus",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "config file (yaml, json or toml)")
	root.AddCommand(newSolveCommand())
	return root
}

// loadConfig reads the configuration for cmd from its flags and --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(cmd.Flags(), file)
}

func newLogger(cmd *cobra.Command, c *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	logger.SetLevel(level)

	if c.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}
