package utils

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("utils: invalid config")

// Config holds the configuration for the game
type Config struct {
	Width        int     `json:"width" yaml:"width"`
	Height       int     `json:"height" yaml:"height"`
	CellSize     int     `json:"cell_size" yaml:"cell_size"`
	TickInterval float64 `json:"tick_interval" yaml:"tick_interval"` // seconds between generations
	StartPaused  bool    `json:"start_paused" yaml:"start_paused"`
	FrameRate    int     `json:"frame_rate" yaml:"frame_rate"` // frames per second of the UI loop
	SpeedStep    float64 `json:"speed_step" yaml:"speed_step"`
	KeyRepeat    float64 `json:"key_repeat" yaml:"key_repeat"` // seconds between repeats of a held key

	RandomDensity float64 `json:"random_density" yaml:"random_density"`
	Seed          int64   `json:"seed" yaml:"seed"`
	Patterns      bool    `json:"patterns" yaml:"patterns"`

	MaxGenerations   int  `json:"max_generations" yaml:"max_generations"`
	StopOnStagnation bool `json:"stop_on_stagnation" yaml:"stop_on_stagnation"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            300,
		Height:           300,
		CellSize:         6,
		TickInterval:     0.05,
		StartPaused:      false,
		FrameRate:        120,
		SpeedStep:        0.01,
		KeyRepeat:        0.1,
		RandomDensity:    0,
		Seed:             42,
		Patterns:         false,
		MaxGenerations:   1000,
		StopOnStagnation: true,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Fields missing from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting that cannot be used to build a simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid size must be positive, got %dx%d", c.Width, c.Height)
	case math.IsNaN(c.TickInterval) || math.IsInf(c.TickInterval, 0):
		return errors.Wrapf(ErrInvalidConfig, "tick interval must be finite, got %f", c.TickInterval)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %d", c.CellSize)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "frame rate must be positive, got %d", c.FrameRate)
	case c.SpeedStep < 0:
		return errors.Wrapf(ErrInvalidConfig, "speed step must not be negative, got %f", c.SpeedStep)
	case c.KeyRepeat < 0:
		return errors.Wrapf(ErrInvalidConfig, "key repeat must not be negative, got %f", c.KeyRepeat)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random density must be within [0,1], got %f", c.RandomDensity)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
