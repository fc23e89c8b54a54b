// Package config loads dmtx settings from files, environment and flags.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ericlevine/ecc200"
	"github.com/ericlevine/ecc200/datamatrix/encoder"
	"github.com/ericlevine/ecc200/render"
	"github.com/ericlevine/ecc200/scan"
)

// SizeAuto selects the smallest symbol that holds the payload.
const SizeAuto = "auto"

// Config is the complete dmtx configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`

	Symbol SymbolConfig `mapstructure:"symbol" yaml:"symbol" json:"symbol"`
	Render RenderConfig `mapstructure:"render" yaml:"render" json:"render"`
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`
	Scan   ScanConfig   `mapstructure:"scan" yaml:"scan" json:"scan"`
}

// SymbolConfig selects the symbol size.
type SymbolConfig struct {
	// Size is "ROWSxCOLS" or "auto".
	Size  string `mapstructure:"size" yaml:"size" json:"size"`
	Shape string `mapstructure:"shape" yaml:"shape" json:"shape"`
}

// RenderConfig controls image output.
type RenderConfig struct {
	ModuleSize int    `mapstructure:"module_size" yaml:"module_size" json:"module_size"`
	QuietZone  int    `mapstructure:"quiet_zone" yaml:"quiet_zone" json:"quiet_zone"`
	Width      int    `mapstructure:"width" yaml:"width" json:"width"`
	Foreground string `mapstructure:"foreground" yaml:"foreground" json:"foreground"`
	Background string `mapstructure:"background" yaml:"background" json:"background"`
}

// OutputConfig controls textual output.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// ScanConfig controls image decoding.
type ScanConfig struct {
	Backend   string `mapstructure:"backend" yaml:"backend" json:"backend"`
	TryHarder bool   `mapstructure:"try_harder" yaml:"try_harder" json:"try_harder"`
	Workers   int    `mapstructure:"workers" yaml:"workers" json:"workers"`
}

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"text", "json"}
	validOutputFormats = []string{"text", "yaml", "json"}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	ro := render.DefaultOptions()
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Symbol: SymbolConfig{
			Size:  fmt.Sprintf("%dx%d", ecc200.DefaultRows, ecc200.DefaultCols),
			Shape: encoder.ShapeAny.String(),
		},
		Render: RenderConfig{
			ModuleSize: ro.ModuleSize,
			QuietZone:  ro.QuietZone,
			Foreground: ro.Foreground,
			Background: ro.Background,
		},
		Output: OutputConfig{Format: "text"},
		Scan:   ScanConfig{Backend: string(scan.BackendAuto)},
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("invalid log format: %s (must be one of: %s)", c.LogFormat, strings.Join(validLogFormats, ", "))
	}
	if !slices.Contains(validOutputFormats, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)", c.Output.Format, strings.Join(validOutputFormats, ", "))
	}
	if _, err := c.SymbolOptions(); err != nil {
		return err
	}
	if c.Render.ModuleSize <= 0 {
		return fmt.Errorf("invalid module size: %d (must be positive)", c.Render.ModuleSize)
	}
	if c.Render.QuietZone < 0 {
		return fmt.Errorf("invalid quiet zone: %d (must not be negative)", c.Render.QuietZone)
	}
	if c.Render.Width < 0 {
		return fmt.Errorf("invalid width: %d (must not be negative)", c.Render.Width)
	}
	if !render.ValidColor(c.Render.Foreground) {
		return fmt.Errorf("invalid foreground colour: %q", c.Render.Foreground)
	}
	if !render.ValidColor(c.Render.Background) {
		return fmt.Errorf("invalid background colour: %q", c.Render.Background)
	}
	if _, err := scan.ParseBackend(c.Scan.Backend); err != nil {
		return err
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("invalid scan workers: %d (must not be negative)", c.Scan.Workers)
	}
	return nil
}

// SymbolOptions converts the symbol settings into encoder options.
func (c *Config) SymbolOptions() ([]ecc200.Option, error) {
	shape, err := encoder.ParseShape(c.Symbol.Shape)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(c.Symbol.Size), SizeAuto) {
		return []ecc200.Option{ecc200.WithAutoSize(shape)}, nil
	}
	si, err := encoder.ParseSize(c.Symbol.Size)
	if err != nil {
		return nil, err
	}
	return []ecc200.Option{ecc200.WithSize(si.Rows, si.Cols)}, nil
}

// RenderOptions converts the render settings.
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		ModuleSize: c.Render.ModuleSize,
		QuietZone:  c.Render.QuietZone,
		Foreground: c.Render.Foreground,
		Background: c.Render.Background,
	}
}

// ScanOptions converts the scan settings.
func (c *Config) ScanOptions() (scan.Options, error) {
	b, err := scan.ParseBackend(c.Scan.Backend)
	if err != nil {
		return scan.Options{}, err
	}
	return scan.Options{Backend: b, TryHarder: c.Scan.TryHarder, Workers: c.Scan.Workers}, nil
}
