// Package config loads settings for the neighbors command from, in order of
// precedence: command-line flags, NEIGHBORS_* environment variables, a
// neighbors.yaml file, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vkarpachev/neighbors/report"
)

// ErrConfig indicates configuration that could not be read or is invalid.
var ErrConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. NEIGHBORS_PRECISION.
const EnvPrefix = "NEIGHBORS"

// Config holds every setting of the neighbors command.
type Config struct {
	Input        string  `mapstructure:"input"`         // points file; empty means interactive
	RadiusFactor float64 `mapstructure:"radius_factor"` // see report.Options
	Precision    int     `mapstructure:"precision"`     // see report.Options
	HistoryFile  string  `mapstructure:"history_file"`  // interactive history; empty disables it
	Prompt       string  `mapstructure:"prompt"`        // interactive prompt
}

// ReportOptions converts c to report.Options.
func (c *Config) ReportOptions() report.Options {
	return report.Options{RadiusFactor: c.RadiusFactor, Precision: c.Precision}
}

// flag name → config key
var flagKeys = map[string]string{
	"input":         "input",
	"radius-factor": "radius_factor",
	"precision":     "precision",
	"history":       "history_file",
	"prompt":        "prompt",
}

// RegisterFlags defines the command-line flags understood by Load on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	def := report.DefaultOptions()
	fs.String("config", "", "path to a config file (default: ./neighbors.yaml or $HOME/.neighbors/neighbors.yaml)")
	fs.StringP("input", "i", "", "file with one \"X Y\" point per line; interactive input if empty")
	fs.Float64("radius-factor", def.RadiusFactor, "neighbors are counted within this multiple of the nearest distance")
	fs.Int("precision", def.Precision, "decimals printed for the radius")
	fs.String("history", "", "file keeping interactive input history")
	fs.String("prompt", "> ", "interactive prompt")
}

// Load resolves the configuration. fs may be nil; otherwise it must have been
// set up by RegisterFlags and parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	def := report.DefaultOptions()
	v.SetDefault("input", "")
	v.SetDefault("radius_factor", def.RadiusFactor)
	v.SetDefault("precision", def.Precision)
	v.SetDefault("history_file", "")
	v.SetDefault("prompt", "> ")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var explicit string
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("%w: bind flag %q: %v", ErrConfig, name, err)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.SetConfigName("neighbors")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.neighbors")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: read config: %v", ErrConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrConfig, err)
	}
	if err := cfg.ReportOptions().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return &cfg, nil
}
