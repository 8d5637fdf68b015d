package tiledesigner

import (
	"errors"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	grid, err := cfg.GridSpec()
	if err != nil {
		t.Fatal(err)
	}
	if grid.Origin() != (Vec2{X: -32, Y: -32}) {
		t.Errorf("origin = %+v, want centered (-32,-32)", grid.Origin())
	}
	if grid.Size() != (GridSize{8, 8}) || grid.CellSize() != (Vec2{X: 8, Y: 8}) {
		t.Errorf("grid = %v x %v", grid.Size(), grid.CellSize())
	}
}

func TestLoadConfig(t *testing.T) {
	data := []byte(`
window:
  title: test
  width: 640
  height: 480
grid:
  cell_size: [16, 16]
  size: [10, 4]
  origin: [0, 0]
camera:
  x: 80
  y: 32
  zoom: 2
painter:
  enabled: true
  block: blank
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Title != "test" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Grid.Origin == nil || *cfg.Grid.Origin != [2]float64{0, 0} {
		t.Errorf("origin = %v", cfg.Grid.Origin)
	}

	e, err := cfg.NewEditor()
	if err != nil {
		t.Fatal(err)
	}
	if !e.PainterEnabled() || e.Palette().Active() != BlockBlank {
		t.Errorf("painter enabled=%v block=%v", e.PainterEnabled(), e.Palette().Active())
	}
	cam := e.Camera()
	if cam.Viewport != (Rect{Width: 640, Height: 480}) || cam.X != 80 || cam.Y != 32 || cam.Zoom != 2 {
		t.Errorf("camera = %+v", cam)
	}

	// Window center looks at world (80,32): cell (5,2).
	e.SetPointerSource(nil)
	e.InjectPointer(320, 240)
	e.Step(testDT)
	if c, ok := e.HoveredCell(); !ok || c != (CellCoord{5, 2}) {
		t.Errorf("hovered = %v,%v, want (5,2)", c, ok)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte("camera:\n  zoom: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Zoom != 3 {
		t.Errorf("zoom = %v", cfg.Camera.Zoom)
	}
	if cfg.Window.Width != 1270 || cfg.Window.Height != 720 || cfg.Grid.Size != [2]uint32{8, 8} {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		substr  string
	}{
		{"bad yaml", "window: [", nil, "parse config"},
		{"zero window", "window: {width: 0}", ErrInvalidConfig, "window size"},
		{"zero zoom", "camera: {zoom: 0}", ErrInvalidConfig, "zoom"},
		{"bad block", "painter: {block: lava}", ErrInvalidConfig, "lava"},
		{"zero cell", "grid: {cell_size: [0, 8]}", ErrInvalidCellSize, "grid config"},
		{"zero cols", "grid: {size: [0, 8]}", ErrInvalidGridSize, "grid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v is not %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestConfigNewEditorRejectsInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Camera.Zoom = -1
	if _, err := cfg.NewEditor(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewEditor err = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigApplyEnv(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(env.Options{Environment: map[string]string{
		"TILEDESIGNER_WINDOW_TITLE":    "Env Title",
		"TILEDESIGNER_CAMERA_ZOOM":     "2.5",
		"TILEDESIGNER_CAMERA_X":        "-8",
		"TILEDESIGNER_PAINTER_ENABLED": "true",
		"TILEDESIGNER_PAINTER_BLOCK":   "blank",
		"UNRELATED_CAMERA_ZOOM":        "9",
	}})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Env Title" || cfg.Camera.Zoom != 2.5 || cfg.Camera.X != -8 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.Painter.Enabled || cfg.Painter.Block != "blank" {
		t.Errorf("painter = %+v", cfg.Painter)
	}
	if cfg.Window.Width != 1270 || cfg.Grid.Size != [2]uint32{8, 8} {
		t.Errorf("unset values changed: %+v", cfg)
	}
}

func TestConfigApplyEnvErrors(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		wantErr error
	}{
		{"unparsable", map[string]string{"TILEDESIGNER_WINDOW_WIDTH": "wide"}, nil},
		{"zero zoom", map[string]string{"TILEDESIGNER_CAMERA_ZOOM": "0"}, ErrInvalidConfig},
		{"bad block", map[string]string{"TILEDESIGNER_PAINTER_BLOCK": "lava"}, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.applyEnv(env.Options{Environment: tt.environ})
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v is not %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClampToGrid(t *testing.T) {
	data := []byte(`
window: {width: 640, height: 480}
grid:
  cell_size: [8, 8]
  size: [40, 40]
camera:
  x: 500
  zoom: 4
  clamp_to_grid: true
`)
	cfg, err := LoadConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	e, err := cfg.NewEditor()
	if err != nil {
		t.Fatal(err)
	}
	cam := e.Camera()
	if !cam.BoundsEnabled || cam.Bounds != e.Grid().Bounds() {
		t.Fatalf("bounds = %v enabled=%v, want grid bounds %v", cam.Bounds, cam.BoundsEnabled, e.Grid().Bounds())
	}

	// Grid spans [-160, 160]; the view is 160x120 world units wide.
	if cam.X != 80 || cam.Y != 0 {
		t.Errorf("clamped camera = (%v,%v), want (80,0)", cam.X, cam.Y)
	}
	cam.Pan(-400, 0)
	if cam.X != 80 {
		t.Errorf("pan past the edge moved camera to %v, want 80", cam.X)
	}
	vis := cam.VisibleBounds()
	if vis.X+vis.Width > 160+1e-9 {
		t.Errorf("visible bounds %+v extend past the grid", vis)
	}

	cfg.Camera.ClampToGrid = false
	e, err = cfg.NewEditor()
	if err != nil {
		t.Fatal(err)
	}
	if e.Camera().BoundsEnabled || e.Camera().X != 500 {
		t.Errorf("unclamped camera = %+v", e.Camera())
	}
}
