package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ovidiu-ionescu/simple-simplex-lib/simplex"
)

const envPrefix = "SIMPLEX"

// Config holds the settings of a solve run. Values come from, in rising
// priority: defaults, the config file, SIMPLEX_* environment variables and
// command line flags.
type Config struct {
	LogLevel    string  `mapstructure:"log-level"`
	LogFormat   string  `mapstructure:"log-format"`
	Tolerance   float64 `mapstructure:"tolerance"`
	Output      string  `mapstructure:"output"`
	ShowTableau bool    `mapstructure:"show-tableau"`
	MetricsFile string  `mapstructure:"metrics-file"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Tolerance: simplex.DefaultTolerance,
		Output:    "text",
	}
}

// AddFlags registers a flag for every setting on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("log-level", d.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.String("log-format", d.LogFormat, "log format (text or json)")
	fs.Float64("tolerance", d.Tolerance, "magnitude below which a tableau cell counts as zero")
	fs.StringP("output", "o", d.Output, "result format (text or yaml)")
	fs.Bool("show-tableau", d.ShowTableau, "print the final tableau")
	fs.String("metrics-file", d.MetricsFile, "write prometheus metrics to this file")
}

// Load merges the sources into a Config. file may be empty.
func Load(fs *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("log-format", d.LogFormat)
	v.SetDefault("tolerance", d.Tolerance)
	v.SetDefault("output", d.Output)
	v.SetDefault("show-tableau", d.ShowTableau)
	v.SetDefault("metrics-file", d.MetricsFile)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "binding flags")
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return errors.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	switch c.Output {
	case "text", "yaml":
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
