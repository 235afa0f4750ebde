package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
)

// Stamp places a named pattern on the starting grid
type Stamp struct {
	Pattern string `json:"pattern"`
	Row     int    `json:"row"`
	Col     int    `json:"col"`
}

// Config holds the configuration for a simulation run
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Policy              string        `json:"policy"`
	Seed                int64         `json:"seed"` // 0 picks a seed from the clock
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"` // 0 runs until interrupted
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	Render              bool          `json:"render"`
	Stamps              []Stamp       `json:"stamps"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               model.DefaultSize,
		Height:              model.DefaultSize,
		Policy:              string(model.PolicyRandom),
		FrameRate:           100 * time.Millisecond,
		MaxGenerations:      1000,
		AutoRestart:         true,
		StagnationThreshold: 5,
		Render:              true,
	}
}

// LoadConfig loads configuration from JSON file, starting from DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks dimensions, policy and stamp names
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Wrapf(model.ErrInvalidDimension, "[Validate] grid size: %dx%d", c.Width, c.Height)
	}
	if _, err := model.ParsePolicy(c.Policy); err != nil {
		return err
	}
	for _, s := range c.Stamps {
		if _, err := model.PatternByName(s.Pattern); err != nil {
			return err
		}
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame rate: %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] negative generation limit: %d", c.MaxGenerations)
	}
	return nil
}
