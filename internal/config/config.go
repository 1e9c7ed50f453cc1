// SPDX-License-Identifier: MIT

// Package config resolves the run configuration from positional arguments,
// flags, SCW_* environment variables and an optional YAML file.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/scw/internal/logging"
)

// Keys shared by flags, env vars and the config file.
const (
	KeyConfig   = "config"
	KeyPasses   = "passes"
	KeyTrace    = "trace"
	KeyLogLevel = "log.level"
	KeyLogFile  = "log.file"
)

// flag name -> viper key, for the keys whose names differ.
var flagKeys = map[string]string{
	"log-level": KeyLogLevel,
	"log-file":  KeyLogFile,
}

// Config is a resolved, validated run configuration.
type Config struct {
	TrainPath string
	TestPath  string // empty: evaluate on the training set
	C         float64
	Eta       float64
	Passes    int
	Trace     bool

	Log logging.Config
}

// AddFlags registers the flags Load reads on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyConfig, "c", "", "optional YAML config file")
	fs.IntP(KeyPasses, "p", 1, "number of sweeps over the training data")
	fs.Bool(KeyTrace, true, "print the mean vector after every update")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-file", "", "also write logs to a rotating file with this prefix")
}

// Load builds a Config from cmd's flags and args:
// <train-data> <C> <eta> [test-data].
// Explicit flags win over SCW_* env vars, which win over the config file.
func Load(cmd *cobra.Command, args []string) (*Config, error) {
	if len(args) < 3 || len(args) > 4 {
		return nil, errors.Errorf("want <train-data> <C> <eta> [test-data], got %d args", len(args))
	}

	v := viper.New()
	v.SetEnvPrefix("scw")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return nil, errors.Wrap(bindErr, "bind flags")
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	c, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse C %q", args[1])
	}
	eta, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse eta %q", args[2])
	}

	cfg := &Config{
		TrainPath: args[0],
		C:         c,
		Eta:       eta,
		Passes:    v.GetInt(KeyPasses),
		Trace:     v.GetBool(KeyTrace),
		Log:       logging.DefaultConfig(),
	}
	if len(args) == 4 {
		cfg.TestPath = args[3]
	}
	cfg.Log.Console = cmd.ErrOrStderr()
	cfg.Log.FilePath = v.GetString(KeyLogFile)
	if cfg.Log.Level, err = logging.ParseLevel(v.GetString(KeyLogLevel)); err != nil {
		return nil, err
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields that are not validated downstream.
// C and eta ranges are checked when the model is built.
func (c *Config) Validate() error {
	if c.TrainPath == "" {
		return errors.New("training data path is empty")
	}
	if c.Passes < 1 {
		return errors.Errorf("passes must be >= 1, got %d", c.Passes)
	}

	return nil
}
