// Package config loads settings for the integrate command.
package config

import (
	"errors"
	"fmt"

	"github.com/integrators-go/integrators/pkg/integrators/cuba"
)

// Routine names accepted in Config.Routine.
const (
	RoutineNative    = "native"
	RoutineReference = "reference"
)

// Config holds the integrate command settings.
type Config struct {
	Algorithm string  `koanf:"algorithm"`
	Routine   string  `koanf:"routine"`
	EpsRel    float64 `koanf:"epsrel"`
	EpsAbs    float64 `koanf:"epsabs"`
	MinEval   int64   `koanf:"mineval"`
	MaxEval   int64   `koanf:"maxeval"`
	RNG       string  `koanf:"rng"`
	Seed      int     `koanf:"seed"`
	Verbosity int     `koanf:"verbosity"`
	Workers   int     `koanf:"workers"`

	Log LogConfig `koanf:"log"`
}

// LogConfig selects the zap logger built by the command.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the settings used when neither a file nor the environment
// overrides them.
func Default() Config {
	return Config{
		Algorithm: "vegas",
		Routine:   RoutineReference,
		EpsRel:    1e-3,
		EpsAbs:    1e-12,
		MaxEval:   50000,
		RNG:       cuba.Sobol.String(),
		Workers:   1,
		Log:       LogConfig{Level: "info", Format: "console"},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, ok := cuba.ByName(c.Algorithm); !ok {
		return fmt.Errorf("unknown algorithm %q (want vegas, suave or cuhre)", c.Algorithm)
	}
	if c.Routine != RoutineNative && c.Routine != RoutineReference {
		return fmt.Errorf("unknown routine %q (want %s or %s)", c.Routine, RoutineNative, RoutineReference)
	}
	if c.EpsRel < 0 || c.EpsAbs < 0 {
		return errors.New("epsrel and epsabs must not be negative")
	}
	if c.EpsRel == 0 && c.EpsAbs == 0 {
		return errors.New("at least one of epsrel and epsabs must be positive")
	}
	if c.MinEval < 0 || c.MaxEval <= 0 || c.MinEval > c.MaxEval {
		return fmt.Errorf("invalid evaluation bounds: mineval=%d maxeval=%d", c.MinEval, c.MaxEval)
	}
	if _, err := cuba.ParseRandomNumberSource(c.RNG); err != nil {
		return err
	}
	if c.Verbosity < 0 || c.Verbosity > 3 {
		return fmt.Errorf("invalid verbosity: %d (must be 0-3)", c.Verbosity)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d (must be positive)", c.Workers)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (want console or json)", c.Log.Format)
	}
	return nil
}

// BuildAlgorithm returns the configured algorithm with its common settings applied.
func (c *Config) BuildAlgorithm() (cuba.Algorithm, error) {
	src, err := cuba.ParseRandomNumberSource(c.RNG)
	if err != nil {
		return nil, err
	}
	common := func(cm *cuba.Common) {
		cm.MinEval, cm.MaxEval = c.MinEval, c.MaxEval
		cm.Verbosity = c.Verbosity
		cm.RandomSource, cm.Seed = src, c.Seed
	}
	switch c.Algorithm {
	case "vegas":
		v := cuba.NewVegas()
		common(&v.Common)
		return v, nil
	case "suave":
		s := cuba.NewSuave()
		common(&s.Common)
		return s, nil
	case "cuhre":
		cu := cuba.NewCuhre()
		common(&cu.Common)
		return cu, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", c.Algorithm)
}
