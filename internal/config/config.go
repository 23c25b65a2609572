// Package config loads run settings for the circuits CLI from, in rising
// precedence: built-in defaults, an optional TOML file, CIRCUITS_*
// environment variables, and command-line flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/dsu"
	"github.com/katalvlaran/circuits/spatial"
)

// EnvPrefix is the environment variable prefix, e.g. CIRCUITS_CONNECTIONS.
const EnvPrefix = "CIRCUITS"

// Keys, shared by the TOML file, environment and flags.
const (
	KeyConnections   = "connections"
	KeyMetric        = "metric"
	KeyStrategy      = "strategy"
	KeyWorkers       = "workers"
	KeyCountAttempts = "count_attempts"
	KeyVerbose       = "verbose"
	KeyJSON          = "json"
	KeyReport        = "report"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved set of run settings.
type Config struct {
	Connections   int    `mapstructure:"connections"`
	Metric        string `mapstructure:"metric"`
	Strategy      string `mapstructure:"strategy"`
	Workers       int    `mapstructure:"workers"`
	CountAttempts bool   `mapstructure:"count_attempts"`
	Verbose       bool   `mapstructure:"verbose"`
	JSON          bool   `mapstructure:"json"`
	Report        int    `mapstructure:"report"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyConnections, 1000)
	v.SetDefault(KeyMetric, spatial.MetricSquaredEuclidean)
	v.SetDefault(KeyStrategy, dsu.ByRank.String())
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyCountAttempts, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyJSON, false)
	v.SetDefault(KeyReport, 0)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// Load resolves a Config from v. A non-empty path is read as TOML first;
// flags, when non-nil, are bound so that explicitly set flags win.
func Load(v *viper.Viper, path string, flags *pflag.FlagSet) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}
	if flags != nil {
		for _, key := range []string{
			KeyConnections, KeyMetric, KeyStrategy, KeyWorkers,
			KeyCountAttempts, KeyVerbose, KeyJSON, KeyReport,
		} {
			if f := flags.Lookup(flagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "config: bind flag %s", f.Name)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// flagName maps a config key to its CLI flag, e.g. count_attempts → count-attempts.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Validate rejects negative numbers and unknown metric or strategy names.
func (c *Config) Validate() error {
	if c.Connections < 0 {
		return errors.Wrapf(ErrInvalidConfig, "connections must be >= 0, got %d", c.Connections)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	if c.Report < 0 {
		return errors.Wrapf(ErrInvalidConfig, "report must be >= 0, got %d", c.Report)
	}
	if _, err := spatial.MetricByName(c.Metric); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}
	if _, err := dsu.StrategyByName(c.Strategy); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "%v", err)
	}

	return nil
}

// Options translates the configuration into circuit options.
// It assumes Validate has passed.
func (c *Config) Options() []circuit.Option {
	metric, _ := spatial.MetricByName(c.Metric)
	strategy, _ := dsu.StrategyByName(c.Strategy)
	policy := circuit.CountMerges
	if c.CountAttempts {
		policy = circuit.CountAttempts
	}

	return []circuit.Option{
		circuit.WithMetric(metric),
		circuit.WithStrategy(strategy),
		circuit.WithBoundPolicy(policy),
		circuit.WithWorkers(c.Workers),
	}
}
