package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/moire/internal/controls"
	"github.com/san-kum/moire/internal/params"
)

const (
	DefaultFPS    = 30
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTheme  = "mono"
)

type Config struct {
	Parameters params.Parameters         `yaml:"parameters"`
	Controls   map[string]controls.Range `yaml:"controls,omitempty"`
	FPS        int                       `yaml:"fps"`
	Width      int                       `yaml:"width"`
	Height     int                       `yaml:"height"`
	Theme      string                    `yaml:"theme"`
	Instant    bool                      `yaml:"instant"`
	LogLevel   string                    `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Parameters: params.Defaults(),
		FPS:        DefaultFPS,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Theme:      DefaultTheme,
		LogLevel:   "info",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks parameter domains, control ranges and sizes.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Parameters.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Ranges(); err != nil {
		errs = append(errs, err)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		errs = append(errs, fmt.Errorf("config: fps %d out of range (0, 240]", c.FPS))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height))
	}
	return errors.Join(errs...)
}

// Ranges converts the keyed control overrides into panel ranges.
func (c *Config) Ranges() (map[params.Field]controls.Range, error) {
	out := make(map[params.Field]controls.Range, len(c.Controls))
	for key, r := range c.Controls {
		f, err := params.ParseField(key)
		if err != nil {
			return nil, err
		}
		if !r.Valid() {
			return nil, fmt.Errorf("config: control %s has invalid range [%g, %g] step %g", key, r.Min, r.Max, r.Step)
		}
		out[f] = r
	}
	return out, nil
}
