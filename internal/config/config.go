package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/colormap/internal/grid"
)

const (
	DefaultScene  = "mandelbrot"
	DefaultWidth  = 701
	DefaultHeight = 401
	DefaultDepth  = 8
	DefaultColor  = "rgb"
	DefaultOrder  = "col"
	DefaultFormat = "pnm"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ConfigError names the offending field.
type ConfigError struct {
	Field   string
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Field, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

func invalid(field, format string, args ...any) error {
	return &ConfigError{
		Field:   field,
		Wrapped: fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...),
	}
}

type Config struct {
	Scene   string             `yaml:"scene"`
	Palette string             `yaml:"palette,omitempty"`
	Reverse bool               `yaml:"reverse,omitempty"`
	Width   int                `yaml:"width"`
	Height  int                `yaml:"height"`
	Depth   int                `yaml:"depth"`
	Color   string             `yaml:"color"`
	Order   string             `yaml:"order"`
	Format  string             `yaml:"format"`
	Plain   bool               `yaml:"plain,omitempty"`
	Output  string             `yaml:"output,omitempty"`
	Canvas  *CanvasConfig      `yaml:"canvas,omitempty"`
	Range   *RangeConfig       `yaml:"range,omitempty"`
	Params  map[string]float64 `yaml:"params,omitempty"`
}

// CanvasConfig overrides the scene's default viewport.
type CanvasConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// RangeConfig pins the palette to a fixed input range. Auto scales the
// palette to the rendered data instead.
type RangeConfig struct {
	Lo   float64 `yaml:"lo"`
	Hi   float64 `yaml:"hi"`
	Auto bool    `yaml:"auto,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Scene:  DefaultScene,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Depth:  DefaultDepth,
		Color:  DefaultColor,
		Order:  DefaultOrder,
		Format: DefaultFormat,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	if c.Canvas != nil {
		cv := *c.Canvas
		out.Canvas = &cv
	}
	if c.Range != nil {
		r := *c.Range
		out.Range = &r
	}
	out.Params = maps.Clone(c.Params)
	return &out
}

// Validate checks the fields that do not depend on the scene registry.
func (c *Config) Validate() error {
	if c.Scene == "" {
		return invalid("scene", "empty")
	}
	if c.Width < 2 || c.Height < 2 {
		return invalid("size", "%dx%d, need at least 2x2", c.Width, c.Height)
	}
	if c.Depth != 8 && c.Depth != 16 {
		return invalid("depth", "%d, want 8 or 16", c.Depth)
	}
	if c.Color != "rgb" && c.Color != "gray" {
		return invalid("color", "%q, want rgb or gray", c.Color)
	}
	if _, err := grid.ParseOrder(c.Order); err != nil {
		return &ConfigError{Field: "order", Wrapped: err}
	}
	if cv := c.Canvas; cv != nil && (cv.XMin == cv.XMax || cv.YMin == cv.YMax) {
		return invalid("canvas", "empty viewport")
	}
	return nil
}
