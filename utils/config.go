package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig marks a configuration that failed validation
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a simulation run
type Config struct {
	Bound               int           `json:"bound"`
	Rule                string        `json:"rule"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	Seed                uint64        `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Bound:               24,
		Rule:                "standard",
		FrameRate:           150 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects values the driver cannot run with. Grids themselves accept
// any bound, so a non-positive bound is caught here instead.
func (c Config) Validate() error {
	if c.Bound <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] bound must be positive, got %d", c.Bound)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0 {
		return errors.Wrap(ErrInvalidConfig, "[Validate] counts must not be negative")
	}
	return nil
}
