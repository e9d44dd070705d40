// Package config loads the settings of a training run.
//
// Values are layered: defaults, then an optional YAML file, then
// environment variables prefixed with KUHN_ (e.g. KUHN_ITERATIONS).
package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/majkelelele/kuhncfr"
)

// Config provides configuration for the Kuhn poker trainer
type Config struct {
	Iterations int   `yaml:"iterations" envconfig:"iterations"`
	Seed       int64 `yaml:"seed" envconfig:"seed"`
	// LevelDB directory used to resume training and save the result.
	CheckpointDB string `yaml:"checkpointDb" envconfig:"checkpoint_db"`
	// Number of self-play games to simulate with the trained strategies.
	SimulateGames int `yaml:"simulateGames" envconfig:"simulate_games"`
	// Address to serve net/http/pprof on, disabled if empty.
	DebugAddr string `yaml:"debugAddr" envconfig:"debug_addr"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	params := cfr.DefaultParams()
	return Config{
		Iterations: params.Iterations,
		Seed:       params.Seed,
	}
}

// Load returns the default configuration overridden by the YAML file at
// path, if path is not empty, and then by the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "open config")
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	}

	if err := envconfig.Process("kuhn", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process environment")
	}

	return cfg, nil
}

// Params returns the trainer parameters of this configuration.
func (c Config) Params() cfr.Params {
	return cfr.Params{
		Iterations: c.Iterations,
		Seed:       c.Seed,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}

	if c.SimulateGames < 0 {
		return errors.Errorf("simulateGames must not be negative, got %d", c.SimulateGames)
	}

	return nil
}
