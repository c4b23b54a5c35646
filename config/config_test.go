package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load(nil))
	is.Equal(cfg.GetInt(ConfigSamples), 10000)
	is.Equal(cfg.GetInt(ConfigScrambleLength), 30)
	is.Equal(cfg.GetString(ConfigLogLevel), "info")
	is.True(cfg.GetInt(ConfigWorkers) >= 1)
	is.True(cfg.GetBool(ConfigSeedTables))
	is.Equal(cfg.GetInt(ConfigHistogramBins), 0)

	d := DefaultConfig()
	is.Equal(d.GetInt(ConfigSamples), 10000)
	is.NoErr(d.Validate())
}

func TestFlags(t *testing.T) {
	is := is.New(t)
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--samples", "12", "--workers=3", "--log-level", "debug"}))
	is.Equal(cfg.GetInt(ConfigSamples), 12)
	is.Equal(cfg.GetInt(ConfigWorkers), 3)
	is.Equal(cfg.GetString(ConfigLogLevel), "debug")
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("CUBALT_SCRAMBLE_LENGTH", "7")
	t.Setenv("CUBALT_SAMPLES", "99")
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--samples", "5"}))
	is.Equal(cfg.GetInt(ConfigScrambleLength), 7)
	// An explicit flag beats the environment.
	is.Equal(cfg.GetInt(ConfigSamples), 5)
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "cubecheck.yaml")
	is.NoErr(os.WriteFile(path, []byte("samples: 42\nworkers: 2\n"), 0o644))
	cfg := &Config{}
	is.NoErr(cfg.Load([]string{"--config", path}))
	is.Equal(cfg.GetInt(ConfigSamples), 42)
	is.Equal(cfg.GetInt(ConfigWorkers), 2)

	err := (&Config{}).Load([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	is.True(err != nil)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	err := cfg.Load([]string{"--workers", "0", "--samples", "-1", "--log-level", "loud", "--histogram-bins", "-2"})
	assert.ErrorContains(t, err, "workers must be positive")
	assert.ErrorContains(t, err, "samples must not be negative")
	assert.ErrorContains(t, err, `unknown log-level "loud"`)
	assert.ErrorContains(t, err, "histogram-bins must not be negative")
}
