package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const (
	// SizeModeDetected sizes the grid from the hosting terminal
	SizeModeDetected = "detected"
	// SizeModeFixed uses the configured fixed dimensions
	SizeModeFixed = "fixed"

	// RenderModeDiff repaints only cells that changed since the last frame
	RenderModeDiff = "diff"
	// RenderModeFull repaints the whole grid every frame
	RenderModeFull = "full"
)

// Config holds the configuration for the simulation
type Config struct {
	TickInterval time.Duration `json:"tick_interval"`
	Probability  float64       `json:"probability"`
	SizeMode     string        `json:"size_mode"`
	RenderMode   string        `json:"render_mode"`
	Color        bool          `json:"color"`
	BorderWall   bool          `json:"border_wall"`
	FixedWidth   int           `json:"fixed_width"`
	FixedHeight  int           `json:"fixed_height"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickInterval: 100 * time.Millisecond,
		Probability:  0.2,
		SizeMode:     SizeModeDetected,
		RenderMode:   RenderModeDiff,
		Color:        true,
		BorderWall:   false,
		FixedWidth:   80,
		FixedHeight:  25,
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

// ParseProbability interprets the first argument as the initial live-cell
// probability. A missing or malformed argument is non-fatal: the fallback
// is returned and ok reports whether the argument was usable.
func ParseProbability(args []string, fallback float64) (probability float64, ok bool) {
	if len(args) == 0 {
		return fallback, false
	}

	probability, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fallback, false
	}

	return probability, true
}
