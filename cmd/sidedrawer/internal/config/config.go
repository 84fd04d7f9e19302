// Package config loads the optional sidedrawer.yaml that configures the CLI's
// drawer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sidedrawer/pkg/drawer"
	drawererrors "github.com/go-drift/sidedrawer/pkg/errors"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// FileName is the configuration file looked up in a directory.
const FileName = "sidedrawer.yaml"

// SupportedMajor is the only config schema major version understood.
const SupportedMajor = "v1"

// Default values applied when a field is omitted.
const (
	DefaultSideWidth   = 280.0
	DefaultBackground  = "opaque"
	DefaultColor       = "white"
	DefaultBorderColor = "lightgray"
)

// Config mirrors sidedrawer.yaml.
type Config struct {
	Version        string           `yaml:"version,omitempty"`
	Direction      string           `yaml:"direction,omitempty"`
	SideWidth      float64          `yaml:"side_width,omitempty"`
	SpeedThreshold float64          `yaml:"speed_threshold,omitempty"`
	Duration       string           `yaml:"duration,omitempty"`
	Background     BackgroundConfig `yaml:"background"`
	Border         *BorderConfig    `yaml:"border,omitempty"`
}

// BackgroundConfig selects the side pane background.
type BackgroundConfig struct {
	Kind   string        `yaml:"kind,omitempty"`
	Color  string        `yaml:"color,omitempty"`
	Blur   string        `yaml:"blur,omitempty"`
	Shadow *ShadowConfig `yaml:"shadow,omitempty"`
}

// ShadowConfig overrides the opaque background's shadow. Zero fields keep
// their defaults.
type ShadowConfig struct {
	Color   string  `yaml:"color,omitempty"`
	Opacity float64 `yaml:"opacity,omitempty"`
	Radius  float64 `yaml:"radius,omitempty"`
	Width   float64 `yaml:"width,omitempty"`
}

// BorderConfig sets the inner-edge border.
type BorderConfig struct {
	Thickness *float64 `yaml:"thickness,omitempty"`
	Color     string   `yaml:"color,omitempty"`
}

// Resolved contains validated configuration values.
type Resolved struct {
	Path           string
	Direction      drawer.LayoutDirection
	SideWidth      float64
	SpeedThreshold float64
	Duration       time.Duration
	Background     drawer.Background
	Border         *drawer.Border
}

// LoadOptional reads sidedrawer.yaml from dir if present. A missing file
// yields an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes sidedrawer.yaml contents. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Load reads sidedrawer.yaml from dir, if present, and resolves defaults.
func Load(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Path = filepath.Join(dir, FileName)
	return resolved, nil
}

// Resolve validates cfg and fills defaults.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		SideWidth:      cfg.SideWidth,
		SpeedThreshold: cfg.SpeedThreshold,
		Duration:       drawer.DefaultDuration,
	}

	if err := checkVersion(cfg.Version); err != nil {
		return nil, invalid(err)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Direction)) {
	case "", "ltr":
		r.Direction = drawer.LeftToRight
	case "rtl":
		r.Direction = drawer.RightToLeft
	default:
		return nil, invalid(&drawererrors.FieldError{Field: "direction", Value: cfg.Direction, Reason: "must be ltr or rtl"})
	}

	if r.SideWidth == 0 {
		r.SideWidth = DefaultSideWidth
	}
	if r.SideWidth < 0 {
		return nil, invalid(&drawererrors.FieldError{Field: "side_width", Value: cfg.SideWidth, Reason: "must be positive"})
	}
	if r.SpeedThreshold == 0 {
		r.SpeedThreshold = drawer.DefaultSpeedThreshold
	}
	if r.SpeedThreshold < 0 {
		return nil, invalid(&drawererrors.FieldError{Field: "speed_threshold", Value: cfg.SpeedThreshold, Reason: "must not be negative"})
	}
	if d := strings.TrimSpace(cfg.Duration); d != "" {
		parsed, err := time.ParseDuration(d)
		if err != nil || parsed <= 0 {
			return nil, invalid(&drawererrors.FieldError{Field: "duration", Value: cfg.Duration, Reason: "must be a positive duration such as 250ms"})
		}
		r.Duration = parsed
	}

	bg, err := cfg.Background.resolve()
	if err != nil {
		return nil, invalid(err)
	}
	r.Background = bg

	if cfg.Border != nil {
		border, err := cfg.Border.resolve()
		if err != nil {
			return nil, invalid(err)
		}
		r.Border = border
	}
	return r, nil
}

// DrawerConfig converts r into a drawer configuration. Panes, renderer and
// logger are left for the caller.
func (r *Resolved) DrawerConfig() drawer.Config {
	return drawer.Config{
		SideWidth:      r.SideWidth,
		Background:     r.Background,
		Border:         r.Border,
		SpeedThreshold: r.SpeedThreshold,
		Duration:       r.Duration,
	}
}

func (b BackgroundConfig) resolve() (drawer.Background, error) {
	colorName := b.Color
	if colorName == "" {
		colorName = DefaultColor
	}
	color, err := graphics.ParseColor(colorName)
	if err != nil {
		return nil, &drawererrors.FieldError{Field: "background.color", Value: b.Color, Reason: err.Error()}
	}

	kind := strings.ToLower(strings.TrimSpace(b.Kind))
	if kind == "" {
		kind = DefaultBackground
	}
	if kind != "opaque" && b.Shadow != nil {
		return nil, &drawererrors.FieldError{Field: "background.shadow", Value: kind, Reason: "only opaque backgrounds cast a shadow"}
	}

	switch kind {
	case "opaque":
		if b.Blur != "" {
			return nil, &drawererrors.FieldError{Field: "background.blur", Value: b.Blur, Reason: "opaque backgrounds are not blurred"}
		}
		bg := drawer.Opaque{Color: color}
		if b.Shadow != nil {
			shadow, err := b.Shadow.resolve()
			if err != nil {
				return nil, err
			}
			bg.Shadow = &shadow
		}
		return bg, nil
	case "translucent", "vibrant":
		blur, err := drawer.ParseBlurStyle(b.Blur)
		if err != nil {
			return nil, &drawererrors.FieldError{Field: "background.blur", Value: b.Blur, Reason: err.Error()}
		}
		if kind == "translucent" {
			return drawer.Translucent{Blur: blur, Color: color}, nil
		}
		return drawer.Vibrant{Blur: blur, Color: color}, nil
	default:
		return nil, &drawererrors.FieldError{Field: "background.kind", Value: b.Kind, Reason: "must be opaque, translucent or vibrant"}
	}
}

func (s ShadowConfig) resolve() (graphics.Shadow, error) {
	shadow := graphics.DefaultShadow()
	if s.Color != "" {
		color, err := graphics.ParseColor(s.Color)
		if err != nil {
			return shadow, &drawererrors.FieldError{Field: "background.shadow.color", Value: s.Color, Reason: err.Error()}
		}
		shadow.Color = color
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		return shadow, &drawererrors.FieldError{Field: "background.shadow.opacity", Value: s.Opacity, Reason: "must be within [0, 1]"}
	}
	if s.Opacity > 0 {
		shadow.Opacity = s.Opacity
	}
	if s.Radius < 0 {
		return shadow, &drawererrors.FieldError{Field: "background.shadow.radius", Value: s.Radius, Reason: "must not be negative"}
	}
	if s.Radius > 0 {
		shadow.Radius = s.Radius
	}
	if s.Width != 0 {
		shadow.Width = s.Width
	}
	return shadow, nil
}

func (b BorderConfig) resolve() (*drawer.Border, error) {
	border := drawer.DefaultBorder()
	if b.Thickness != nil {
		if *b.Thickness < 0 {
			return nil, &drawererrors.FieldError{Field: "border.thickness", Value: *b.Thickness, Reason: "must not be negative"}
		}
		border.Thickness = *b.Thickness
	}
	if b.Color != "" {
		color, err := graphics.ParseColor(b.Color)
		if err != nil {
			return nil, &drawererrors.FieldError{Field: "border.color", Value: b.Color, Reason: err.Error()}
		}
		border.Color = color
	}
	return &border, nil
}

// checkVersion accepts an empty version or any valid v1.x.y.
func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &drawererrors.FieldError{Field: "version", Value: v, Reason: "not a semantic version"}
	}
	if semver.Major(v) != SupportedMajor {
		return &drawererrors.FieldError{Field: "version", Value: v, Reason: "unsupported major version, want " + SupportedMajor}
	}
	return nil
}

func invalid(err error) error {
	return &drawererrors.DrawerError{Op: "config.Resolve", Kind: drawererrors.KindConfig, Err: err}
}
