// Package config reads collage project files.
//
// A project file is YAML:
//
//	canvas:
//	  width: 600
//	  height: 600
//	layout:
//	  kind: hexagonal
//	  columns: 7
//	  rows: 8
//	photos:
//	  - photos/alice.jpg
//	  - photos/bob.png
//	mockup:
//	  garment: tee.png
//	  width: 400
//	  height: 480
//	  print_area: {x: 120, y: 110, width: 160, height: 200}
//	output:
//	  collage: collage.png
//	  mockup: mockup.png
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jbeda/geom"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/collage"
)

// Config is the top-level project configuration.
type Config struct {
	Canvas CanvasConfig   `yaml:"canvas"`
	Layout collage.Layout `yaml:"layout"`
	Fit    FitConfig      `yaml:"fit"`
	Photos []string       `yaml:"photos"`
	Mockup MockupConfig   `yaml:"mockup"`
	Output OutputConfig   `yaml:"output"`
}

// CanvasConfig is the size of the collage canvas in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FitConfig tunes the photo over-scan factors. Zero keeps the defaults;
// hex_overscan must otherwise be >= 2 and round_overscan >= 1.
type FitConfig struct {
	HexOverscan   float64 `yaml:"hex_overscan"`
	RoundOverscan float64 `yaml:"round_overscan"`
}

// Fitter returns the fitter described by the configuration.
func (f FitConfig) Fitter() collage.Fitter {
	return collage.Fitter{HexOverscan: f.HexOverscan, RoundOverscan: f.RoundOverscan}
}

// MockupConfig describes the garment preview. Garment is optional; an empty
// Output.Mockup disables the preview.
type MockupConfig struct {
	Garment   string     `yaml:"garment"`
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	PrintArea RectConfig `yaml:"print_area"`
}

// RectConfig is a rectangle in preview pixels.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect returns r as a geom.Rect.
func (r RectConfig) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.X, Y: r.Y},
		Max: geom.Coord{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// OutputConfig holds output file paths.
type OutputConfig struct {
	Collage string `yaml:"collage"`
	Mockup  string `yaml:"mockup"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// LoadFile reads a YAML project file. Relative photo and garment paths are
// resolved against the file's directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

// Parse decodes a YAML project and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports configuration values the collage cannot be built from.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return &collage.ParameterError{Name: "canvas", Value: fmt.Sprintf("%dx%d", c.Canvas.Width, c.Canvas.Height)}
	}
	if c.Mockup.Width <= 0 || c.Mockup.Height <= 0 {
		return &collage.ParameterError{Name: "mockup", Value: fmt.Sprintf("%dx%d", c.Mockup.Width, c.Mockup.Height)}
	}
	// Zero selects the default; anything else must still cover the cell.
	if h := c.Fit.HexOverscan; h != 0 && !(h >= collage.MinHexOverscan) {
		return &collage.ParameterError{Name: "fit.hex_overscan", Value: h}
	}
	if r := c.Fit.RoundOverscan; r != 0 && !(r >= collage.MinRoundOverscan) {
		return &collage.ParameterError{Name: "fit.round_overscan", Value: r}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Canvas.Width == 0 {
		c.Canvas.Width = 600
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = 600
	}

	c.Layout = DefaultLayout(c.Layout)

	if c.Mockup.Width == 0 {
		c.Mockup.Width = 400
	}
	if c.Mockup.Height == 0 {
		c.Mockup.Height = 480
	}
	if c.Mockup.PrintArea.Width <= 0 || c.Mockup.PrintArea.Height <= 0 {
		// Chest area of a front-facing tee.
		w, h := float64(c.Mockup.Width), float64(c.Mockup.Height)
		c.Mockup.PrintArea = RectConfig{X: w * 0.3, Y: h * 0.23, Width: w * 0.4, Height: h * 0.42}
	}

	if c.Output.Collage == "" {
		c.Output.Collage = "collage.png"
	}
}

// DefaultLayout fills the parameters l's kind uses but leaves zero, then
// clamps the result.
func DefaultLayout(l collage.Layout) collage.Layout {
	switch l.Kind {
	case collage.LayoutHexagonal:
		if l.Columns == 0 {
			l.Columns = 7
		}
		if l.Rows == 0 {
			l.Rows = 8
		}
	case collage.LayoutSquare:
		if l.Columns == 0 {
			l.Columns = 4
		}
		if l.Rows == 0 {
			l.Rows = 4
		}
	case collage.LayoutCircular:
		if l.Count == 0 {
			l.Count = 12
		}
	case collage.LayoutCenterFocus:
		if l.Count == 0 {
			l.Count = 8
		}
	}
	return l.Clamp()
}

func (c *Config) resolve(dir string) {
	for i, p := range c.Photos {
		c.Photos[i] = join(dir, p)
	}
	if c.Mockup.Garment != "" {
		c.Mockup.Garment = join(dir, c.Mockup.Garment)
	}
}

func join(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
