// Package config holds viewer configuration and its koanf-based loader.
package config

import (
	"fmt"
	"strings"
	"time"

	"vizterm/internal/logging"
)

// DefaultSource is the cyclist dataset the scatter view was built around.
const DefaultSource = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/cyclist-data.json"

// Config contains process configuration.
type Config struct {
	// Source is an http(s) URL or a local file path.
	Source string `koanf:"source"`

	// Variant is auto, scatter or heatmap.
	Variant string `koanf:"variant"`

	// Padding is the chart padding in surface pixels.
	Padding float64 `koanf:"padding"`

	// ResizeQuiet is the trailing debounce window for resize events.
	ResizeQuiet time.Duration `koanf:"resize_quiet"`

	// FetchTimeout bounds a dataset fetch; zero means no timeout.
	FetchTimeout time.Duration `koanf:"fetch_timeout"`

	// ReloadOnResize re-fetches the dataset whenever a resize settles.
	ReloadOnResize bool `koanf:"reload_on_resize"`

	// Watch reloads local dataset files when they change on disk.
	Watch bool `koanf:"watch"`

	// BaseTemperature applies to heatmap CSV files, which carry no header value.
	BaseTemperature float64 `koanf:"base_temperature"`

	// ExportDir receives snapshots written with the export key.
	ExportDir string `koanf:"export_dir"`

	// ExportWidth and ExportHeight size SVG/PNG snapshots in pixels.
	ExportWidth  int `koanf:"export_width"`
	ExportHeight int `koanf:"export_height"`

	Log logging.LogConfig `koanf:"log"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Source:       DefaultSource,
		Variant:      "auto",
		Padding:      8,
		ResizeQuiet:  500 * time.Millisecond,
		Watch:        true,
		ExportDir:    ".",
		ExportWidth:  960,
		ExportHeight: 600,
		Log: logging.LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Variant) {
	case "auto", "scatter", "heatmap":
	default:
		return fmt.Errorf("%w: variant %q (want auto, scatter or heatmap)", ErrInvalidConfig, c.Variant)
	}
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("%w: source must not be empty", ErrInvalidConfig)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding must be >= 0", ErrInvalidConfig)
	}
	if c.ResizeQuiet <= 0 {
		return fmt.Errorf("%w: resize_quiet must be > 0", ErrInvalidConfig)
	}
	if c.ExportWidth <= 0 || c.ExportHeight <= 0 {
		return fmt.Errorf("%w: export_width and export_height must be > 0", ErrInvalidConfig)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch_timeout must be >= 0", ErrInvalidConfig)
	}
	return nil
}
