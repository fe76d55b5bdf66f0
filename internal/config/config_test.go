package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/depeter/snapscroll/internal/snap"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if len(cfg.Swatches) != 8 {
		t.Errorf("default swatches = %d, want 8", len(cfg.Swatches))
	}
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[ui]
width = 800

[carousel]
margin = 4
direction = "vertical"
transition_ms = 150

[[swatches]]
color = "#112233"
width = 60

[[swatches]]
color = "#445566"
width = 90
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.UI.Width != 800 || cfg.UI.Height != 720 {
		t.Errorf("ui = %+v, want width 800 with default height", cfg.UI)
	}
	if len(cfg.Swatches) != 2 || cfg.Swatches[1].Width != 90 {
		t.Errorf("swatches = %+v", cfg.Swatches)
	}
	if cfg.Carousel.TapSlop != 8 {
		t.Errorf("tap slop = %v, want default 8", cfg.Carousel.TapSlop)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
carousel:
  margin: 12
  initial_index: 3
timepicker:
  row_height: 32
gallery:
  sources:
    - a.png
    - https://example.com/b.jpg
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Carousel.Margin != 12 || cfg.Carousel.InitialIndex != 3 {
		t.Errorf("carousel = %+v", cfg.Carousel)
	}
	if cfg.Carousel.Direction != "horizontal" {
		t.Errorf("direction = %q, want default", cfg.Carousel.Direction)
	}
	if cfg.TimePicker.RowHeight != 32 || cfg.TimePicker.Margin != 8 {
		t.Errorf("timepicker = %+v", cfg.TimePicker)
	}
	if len(cfg.Gallery.Sources) != 2 {
		t.Errorf("gallery sources = %v", cfg.Gallery.Sources)
	}
	if len(cfg.Swatches) != 8 {
		t.Errorf("swatches = %d, want defaults", len(cfg.Swatches))
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		want error
	}{
		{"bad direction", "c.toml", "[carousel]\ndirection = \"diagonal\"\n", ErrInvalidDirection},
		{"bad color", "c.toml", "[[swatches]]\ncolor = \"red\"\nwidth = 10\n", ErrInvalidColor},
		{"zero width", "c.yml", "swatches:\n  - color: \"#000000\"\n    width: 0\n", ErrInvalidSize},
		{"negative margin", "c.toml", "[carousel]\nmargin = -1\n", ErrInvalidSize},
		{"unknown format", "c.json", "{}", ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.file, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Carousel.Margin != 16 {
		t.Errorf("margin = %v, want 16", cfg.Carousel.Margin)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Carousel.Direction = "vertical"
	cfg.Gallery.Sources = []string{"one.png"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Carousel.Direction != "vertical" || len(got.Gallery.Sources) != 1 {
		t.Errorf("reloaded = %+v", got)
	}

	yamlPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	if err := cfg.SaveFile(yamlPath); err != nil {
		t.Fatalf("SaveFile yaml: %v", err)
	}
	if got, err := LoadFile(yamlPath); err != nil || got.Carousel.Direction != "vertical" {
		t.Errorf("yaml reload = %+v, %v", got, err)
	}
}

func TestCarouselOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Carousel.Direction = "Vertical"
	opts, err := cfg.CarouselOptions()
	if err != nil {
		t.Fatalf("CarouselOptions: %v", err)
	}
	if opts.Direction != snap.Vertical {
		t.Errorf("direction = %v, want vertical", opts.Direction)
	}
	if opts.Transition != 300*time.Millisecond || opts.Margin != 16 || opts.InitialIndex != 1 {
		t.Errorf("opts = %+v", opts)
	}

	cfg.Carousel.Direction = "sideways"
	if _, err := cfg.CarouselOptions(); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}
}

func TestSwatchColor(t *testing.T) {
	col, err := SwatchConfig{Color: "#003366"}.SwatchColor()
	if err != nil {
		t.Fatal(err)
	}
	if hex := col.Hex(); hex != "#003366" {
		t.Errorf("Hex = %s, want #003366", hex)
	}
	if _, err := (SwatchConfig{Color: "nope"}).SwatchColor(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("err = %v, want ErrInvalidColor", err)
	}
}
