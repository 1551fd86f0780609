package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for a simulation run
type Config struct {
	BoardWidth         int           `json:"BoardWidth"`
	BoardHeight        int           `json:"BoardHeight"`
	BoardCellSize      int           `json:"BoardCellSize"`
	LiveDensity        float64       `json:"LiveDensity"`
	FrameRate          time.Duration `json:"frame_rate"`
	StabilityThreshold int           `json:"stability_threshold"`
	MaxGenerations     int           `json:"max_generations"`
	Workers            int           `json:"workers"`
	BoardFile          string        `json:"board_file"`
	PatternDir         string        `json:"pattern_dir"`
	StopWhenStable     bool          `json:"stop_when_stable"`
	Seed               int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardWidth:         60,
		BoardHeight:        30,
		BoardCellSize:      1,
		LiveDensity:        0.4,
		FrameRate:          150 * time.Millisecond,
		StabilityThreshold: 20,
		MaxGenerations:     5000,
		StopWhenStable:     true,
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, errors.Wrapf(config.Validate(), "[LoadConfig] invalid config in file: %+v", filename)
}

// Validate checks the fields the random seeding path depends on
func (c Config) Validate() error {
	switch {
	case c.BoardWidth <= 0 || c.BoardHeight <= 0:
		return errors.Errorf("board size must be positive, got %dx%d", c.BoardWidth, c.BoardHeight)
	case c.BoardCellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.BoardCellSize)
	case c.LiveDensity < 0 || c.LiveDensity > 1:
		return errors.Errorf("live density must be within [0,1], got %v", c.LiveDensity)
	case c.FrameRate < 0:
		return errors.Errorf("frame rate must not be negative, got %v", c.FrameRate)
	}
	return nil
}
