package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/depeter/snapscroll/internal/snap"
)

var (
	ErrInvalidDirection = errors.New("config: invalid carousel direction")
	ErrInvalidColor     = errors.New("config: invalid swatch color")
	ErrInvalidSize      = errors.New("config: sizes must be positive")
	ErrUnknownFormat    = errors.New("config: unknown file format")
)

type Config struct {
	UI         UIConfig         `toml:"ui" yaml:"ui"`
	Carousel   CarouselConfig   `toml:"carousel" yaml:"carousel"`
	Swatches   []SwatchConfig   `toml:"swatches" yaml:"swatches"`
	TimePicker TimePickerConfig `toml:"timepicker" yaml:"timepicker"`
	Gallery    GalleryConfig    `toml:"gallery" yaml:"gallery"`
	Keybinds   KeybindConfig    `toml:"keybinds" yaml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen" yaml:"fullscreen"`
	Width      int  `toml:"width" yaml:"width"`
	Height     int  `toml:"height" yaml:"height"`
	Debug      bool `toml:"debug" yaml:"debug"`
}

// CarouselConfig holds the snap settings shared by every demo carousel.
type CarouselConfig struct {
	Margin       float64 `toml:"margin" yaml:"margin"`
	Direction    string  `toml:"direction" yaml:"direction"`
	InitialIndex int     `toml:"initial_index" yaml:"initial_index"`
	TransitionMS int     `toml:"transition_ms" yaml:"transition_ms"`
	TapSlop      float64 `toml:"tap_slop" yaml:"tap_slop"`
}

type SwatchConfig struct {
	Color string  `toml:"color" yaml:"color"`
	Width float64 `toml:"width" yaml:"width"`
}

type TimePickerConfig struct {
	Margin    float64 `toml:"margin" yaml:"margin"`
	RowHeight float64 `toml:"row_height" yaml:"row_height"`
	Hour      int     `toml:"hour" yaml:"hour"`
	Minute    int     `toml:"minute" yaml:"minute"`
}

type GalleryConfig struct {
	Sources  []string `toml:"sources" yaml:"sources"`
	ItemSize float64  `toml:"item_size" yaml:"item_size"`
}

type KeybindConfig struct {
	Prev         string `toml:"prev" yaml:"prev"`
	Next         string `toml:"next" yaml:"next"`
	SwitchScreen string `toml:"switch_screen" yaml:"switch_screen"`
	Fullscreen   string `toml:"fullscreen" yaml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Carousel: CarouselConfig{
			Margin:       16,
			Direction:    "horizontal",
			InitialIndex: 1,
			TransitionMS: 300,
			TapSlop:      8,
		},
		Swatches: []SwatchConfig{
			{Color: "#B04349", Width: 80},
			{Color: "#E9662F", Width: 120},
			{Color: "#FD951F", Width: 80},
			{Color: "#8193B6", Width: 120},
			{Color: "#003366", Width: 80},
			{Color: "#FFF6ED", Width: 100},
			{Color: "#00D7B6", Width: 180},
			{Color: "#F15869", Width: 100},
		},
		TimePicker: TimePickerConfig{
			Margin:    8,
			RowHeight: 48,
		},
		Gallery: GalleryConfig{
			ItemSize: 240,
		},
		Keybinds: KeybindConfig{
			Prev:         "PageUp",
			Next:         "PageDown",
			SwitchScreen: "Tab",
			Fullscreen:   "F",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "snapscroll"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a .toml, .yaml or .yml file over the defaults and validates
// the result.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		// Keys present in the file replace defaults wholesale, arrays included.
		cfg.Swatches = nil
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		cfg.Swatches = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	if len(cfg.Swatches) == 0 {
		cfg.Swatches = DefaultConfig().Swatches
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

// SaveFile writes the config, choosing the encoder by extension.
func (c *Config) SaveFile(path string) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return err
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate reports the first setting that cannot drive a carousel.
func (c *Config) Validate() error {
	if _, err := snap.ParseDirection(c.Carousel.Direction); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDirection, c.Carousel.Direction)
	}
	if c.Carousel.Margin < 0 || c.TimePicker.Margin < 0 {
		return fmt.Errorf("%w: margin", ErrInvalidSize)
	}
	if c.TimePicker.RowHeight <= 0 {
		return fmt.Errorf("%w: timepicker.row_height", ErrInvalidSize)
	}
	if c.Gallery.ItemSize <= 0 {
		return fmt.Errorf("%w: gallery.item_size", ErrInvalidSize)
	}
	for i, s := range c.Swatches {
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("%w: swatches[%d] %q", ErrInvalidColor, i, s.Color)
		}
		if s.Width <= 0 {
			return fmt.Errorf("%w: swatches[%d].width", ErrInvalidSize, i)
		}
	}
	return nil
}

// CarouselOptions converts the carousel section into snap options. Count and
// OnSnap are left for the caller.
func (c *Config) CarouselOptions() (snap.Options, error) {
	dir, err := snap.ParseDirection(c.Carousel.Direction)
	if err != nil {
		return snap.Options{}, fmt.Errorf("%w: %q", ErrInvalidDirection, c.Carousel.Direction)
	}
	return snap.Options{
		Margin:       c.Carousel.Margin,
		Direction:    dir,
		InitialIndex: c.Carousel.InitialIndex,
		Transition:   time.Duration(c.Carousel.TransitionMS) * time.Millisecond,
		TapSlop:      c.Carousel.TapSlop,
	}, nil
}

// SwatchColor parses a swatch's hex colour.
func (s SwatchConfig) SwatchColor() (colorful.Color, error) {
	col, err := colorful.Hex(s.Color)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s.Color)
	}
	return col, nil
}
