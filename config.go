package tiledesigner

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration value outside its valid range.
var ErrInvalidConfig = errors.New("tiledesigner: invalid config")

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "TILEDESIGNER_"

// Config is the startup configuration of an editor session.
type Config struct {
	Window  WindowConfig  `yaml:"window" envPrefix:"WINDOW_"`
	Grid    GridConfig    `yaml:"grid"`
	Camera  CameraConfig  `yaml:"camera" envPrefix:"CAMERA_"`
	Painter PainterConfig `yaml:"painter" envPrefix:"PAINTER_"`
}

// WindowConfig sizes the host window. The camera viewport covers it.
type WindowConfig struct {
	Title  string `yaml:"title" env:"TITLE"`
	Width  int    `yaml:"width" env:"WIDTH"`
	Height int    `yaml:"height" env:"HEIGHT"`
}

// GridConfig describes the grid. A nil Origin centers the grid on the
// world origin.
type GridConfig struct {
	CellSize [2]float64  `yaml:"cell_size"`
	Size     [2]uint32   `yaml:"size"`
	Origin   *[2]float64 `yaml:"origin,omitempty"`
}

// CameraConfig is the initial camera placement.
type CameraConfig struct {
	X    float64 `yaml:"x" env:"X"`
	Y    float64 `yaml:"y" env:"Y"`
	Zoom float64 `yaml:"zoom" env:"ZOOM"`

	// ClampToGrid keeps the visible area inside the grid's extent.
	ClampToGrid bool `yaml:"clamp_to_grid" env:"CLAMP_TO_GRID"`
}

// PainterConfig sets whether painting starts enabled and with which block.
type PainterConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED"`
	Block   string `yaml:"block" env:"BLOCK"`
}

// DefaultConfig returns an 8x8 grid of 8x8 cells centered on the origin,
// seen at zoom 4 through a 1270x720 window.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Title: "Building Generator", Width: 1270, Height: 720},
		Grid: GridConfig{
			CellSize: [2]float64{8, 8},
			Size:     [2]uint32{8, 8},
		},
		Camera:  CameraConfig{Zoom: 4},
		Painter: PainterConfig{Block: "wall"},
	}
}

// LoadConfig parses YAML over DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	Logger().Info("config loaded",
		"grid_cols", cfg.Grid.Size[0], "grid_rows", cfg.Grid.Size[1],
		"cell_w", cfg.Grid.CellSize[0], "cell_h", cfg.Grid.CellSize[1])
	if grid, _ := cfg.GridSpec(); !grid.Bounds().Contains(cfg.Camera.X, cfg.Camera.Y) {
		Logger().Warn("camera starts outside the grid",
			"camera_x", cfg.Camera.X, "camera_y", cfg.Camera.Y)
	}
	return cfg, nil
}

// ApplyEnv overrides window, camera and painter settings from
// TILEDESIGNER_* variables such as TILEDESIGNER_CAMERA_ZOOM. Unset variables
// leave the current values alone. The result is validated.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(env.Options{})
}

func (c *Config) applyEnv(opts env.Options) error {
	opts.Prefix = EnvPrefix
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return c.Validate()
}

// Validate checks every section of the config.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if !positiveFinite(c.Camera.Zoom) {
		return fmt.Errorf("%w: camera zoom %v", ErrInvalidConfig, c.Camera.Zoom)
	}
	if !finite(c.Camera.X) || !finite(c.Camera.Y) {
		return fmt.Errorf("%w: camera position (%v,%v)", ErrInvalidConfig, c.Camera.X, c.Camera.Y)
	}
	if _, err := ParseBlockKind(c.Painter.Block); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.GridSpec(); err != nil {
		return fmt.Errorf("grid config: %w", err)
	}
	return nil
}

// GridSpec builds the validated grid specification.
func (c Config) GridSpec() (GridSpec, error) {
	cell := Vec2{X: c.Grid.CellSize[0], Y: c.Grid.CellSize[1]}
	size := GridSize{Cols: c.Grid.Size[0], Rows: c.Grid.Size[1]}
	if c.Grid.Origin == nil {
		return NewCenteredGridSpec(cell, size)
	}
	return NewGridSpec(cell, size, Vec2{X: c.Grid.Origin[0], Y: c.Grid.Origin[1]})
}

// NewEditor builds an editor from the config: grid, a camera whose
// viewport covers the window, and the painter state.
func (c Config) NewEditor() (*Editor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	grid, err := c.GridSpec()
	if err != nil {
		return nil, err
	}
	cam := NewCamera(Rect{Width: float64(c.Window.Width), Height: float64(c.Window.Height)})
	cam.X, cam.Y, cam.Zoom = c.Camera.X, c.Camera.Y, c.Camera.Zoom
	if c.Camera.ClampToGrid {
		cam.SetBounds(grid.Bounds())
		cam.ClampToBounds()
	}

	e := NewEditor(grid, cam)
	block, _ := ParseBlockKind(c.Painter.Block)
	e.Palette().Select(block)
	if c.Painter.Enabled {
		e.EnablePainter()
	}
	return e, nil
}
