package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/integrators-go/integrators/pkg/integrators/cuba"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "integrate.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	want := Default()
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `algorithm: cuhre
routine: native
epsrel: 0.0001
maxeval: 200000
seed: 42
rng: mersenne
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Algorithm != "cuhre" || cfg.Routine != RoutineNative {
		t.Errorf("Algorithm/Routine = %q/%q", cfg.Algorithm, cfg.Routine)
	}
	if cfg.EpsRel != 1e-4 || cfg.MaxEval != 200000 || cfg.Seed != 42 {
		t.Errorf("EpsRel/MaxEval/Seed = %v/%d/%d", cfg.EpsRel, cfg.MaxEval, cfg.Seed)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.EpsAbs != Default().EpsAbs {
		t.Errorf("EpsAbs = %v, want default", cfg.EpsAbs)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "algorithm: suave\nworkers: 2\n")
	t.Setenv("INTEGRATORS_WORKERS", "8")
	t.Setenv("INTEGRATORS_LOG_LEVEL", "warn")
	t.Setenv("INTEGRATORS_EPSREL", "1e-2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Algorithm != "suave" {
		t.Errorf("Algorithm = %q, want suave", cfg.Algorithm)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.EpsRel != 1e-2 {
		t.Errorf("EpsRel = %v, want 0.01", cfg.EpsRel)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil")
	}

	path := writeConfig(t, "algorithm: divonne\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown algorithm") {
		t.Errorf("Load(divonne) error = %v", err)
	}

	path = writeConfig(t, "algorithm: [\n")
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) error = nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"routine", func(c *Config) { c.Routine = "gpu" }, "unknown routine"},
		{"negative eps", func(c *Config) { c.EpsRel = -1 }, "must not be negative"},
		{"zero eps", func(c *Config) { c.EpsRel, c.EpsAbs = 0, 0 }, "must be positive"},
		{"eval bounds", func(c *Config) { c.MinEval = 10; c.MaxEval = 5 }, "invalid evaluation bounds"},
		{"rng", func(c *Config) { c.RNG = "ranlux" }, "unknown random number source"},
		{"verbosity", func(c *Config) { c.Verbosity = 4 }, "invalid verbosity"},
		{"workers", func(c *Config) { c.Workers = 0 }, "invalid workers"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestBuildAlgorithm(t *testing.T) {
	cfg := Default()
	cfg.Algorithm = "suave"
	cfg.RNG = "mersenne"
	cfg.MaxEval = 1234

	alg, err := cfg.BuildAlgorithm()
	if err != nil {
		t.Fatalf("BuildAlgorithm() error = %v", err)
	}
	s, ok := alg.(*cuba.Suave)
	if !ok {
		t.Fatalf("BuildAlgorithm() = %T, want *cuba.Suave", alg)
	}
	if s.MaxEval != 1234 || s.RandomSource != cuba.MersenneTwister {
		t.Errorf("Suave settings = %+v", s.Common)
	}
}

func TestEnvKey(t *testing.T) {
	for in, want := range map[string]string{
		"INTEGRATORS_MAXEVAL":    "maxeval",
		"INTEGRATORS_LOG_LEVEL":  "log.level",
		"INTEGRATORS_LOG_FORMAT": "log.format",
	} {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
