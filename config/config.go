package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"hog/meta"
	"hog/strategy"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes one run of the experiment battery.
type Config struct {
	Goal       int      `yaml:"goal" json:"goal" env:"HOG_GOAL"`
	Sides      int      `yaml:"sides" json:"sides" env:"HOG_SIDES"`
	Samples    int      `yaml:"samples" json:"samples" env:"HOG_SAMPLES"`
	Goroutines int      `yaml:"goroutines" json:"goroutines" env:"HOG_GOROUTINES"`
	Seed       uint64   `yaml:"seed" json:"seed" env:"HOG_SEED"` // 0 draws a random seed
	Baseline   string   `yaml:"baseline" json:"baseline" env:"HOG_BASELINE"`
	Strategies []string `yaml:"strategies" json:"strategies" env:"HOG_STRATEGIES"`
	OutputDir  string   `yaml:"output_dir" json:"output_dir" env:"HOG_OUTPUT_DIR"`
	LogLevel   string   `yaml:"log_level" json:"log_level" env:"HOG_LOG_LEVEL"`
}

func Default() Config {
	return Config{
		Goal:       meta.GOAL_SCORE,
		Sides:      meta.SIDES,
		Samples:    meta.SAMPLES,
		Goroutines: meta.GO_ROUTINES,
		Baseline:   meta.BASELINE,
		Strategies: []string{meta.BASELINE, "hog_pile"},
		LogLevel:   "info",
	}
}

// Load reads the defaults, then the YAML file at path if one is given, then
// the HOG_* environment variables. Later sources override earlier ones.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Goal < 1 || c.Goal > meta.MAX_GOAL {
		return fmt.Errorf("%w: goal %d is not in [1, %d]", ErrInvalidConfig, c.Goal, meta.MAX_GOAL)
	}
	if c.Sides < 2 {
		return fmt.Errorf("%w: dice need at least 2 sides, got %d", ErrInvalidConfig, c.Sides)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}
	if c.Goroutines <= 0 {
		return fmt.Errorf("%w: goroutines must be positive, got %d", ErrInvalidConfig, c.Goroutines)
	}
	if _, err := strategy.Parse(c.Baseline); err != nil {
		return fmt.Errorf("%w: baseline: %w", ErrInvalidConfig, err)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("%w: no strategies to evaluate", ErrInvalidConfig)
	}
	for _, name := range c.Strategies {
		if _, err := strategy.Parse(name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}
