package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds settings for the verification tool. Values come from flags,
// then CUBALT_* environment variables, then an optional config file, then
// defaults.
type Config struct {
	viper.Viper
}

const (
	ConfigFile           = "config"
	ConfigLogLevel       = "log-level"
	ConfigWorkers        = "workers"
	ConfigSamples        = "samples"
	ConfigScrambleLength = "scramble-length"
	ConfigSeedTables     = "seed-tables"
	ConfigHistogramBins  = "histogram-bins"
)

func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigWorkers, runtime.NumCPU())
	c.SetDefault(ConfigSamples, 10000)
	c.SetDefault(ConfigScrambleLength, 30)
	c.SetDefault(ConfigSeedTables, true)
	c.SetDefault(ConfigHistogramBins, 0)
}

// Load parses args and the environment into c.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("cubecheck", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "optional config file (yaml, toml or json)")
	fs.String(ConfigLogLevel, "info", "log level: debug, info, warn or error")
	fs.Int(ConfigWorkers, runtime.NumCPU(), "number of verification goroutines")
	fs.Int(ConfigSamples, 10000, "number of random states to check")
	fs.Int(ConfigScrambleLength, 30, "face turns per random state")
	fs.Bool(ConfigSeedTables, true, "build the lazy symmetry tables before sampling")
	fs.Int(ConfigHistogramBins, 0, "draw coordinate histograms with this many bins (0 disables)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("cubalt")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return c.Validate()
}

// Validate rejects settings the verifier cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.GetInt(ConfigWorkers) < 1 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", ConfigWorkers, c.GetInt(ConfigWorkers)))
	}
	if c.GetInt(ConfigSamples) < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d", ConfigSamples, c.GetInt(ConfigSamples)))
	}
	if c.GetInt(ConfigScrambleLength) < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d", ConfigScrambleLength, c.GetInt(ConfigScrambleLength)))
	}
	if c.GetInt(ConfigHistogramBins) < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %d", ConfigHistogramBins, c.GetInt(ConfigHistogramBins)))
	}
	switch strings.ToLower(c.GetString(ConfigLogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown %s %q", ConfigLogLevel, c.GetString(ConfigLogLevel)))
	}
	return errors.Join(errs...)
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
