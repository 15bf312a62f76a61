// Package config loads progress bar themes and bar properties from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggbar"
)

// Default canvas size used when a file leaves width or height unset.
const (
	DefaultWidth  = 200
	DefaultHeight = 24
)

// Config is a loaded document, converted to ggbar types.
type Config struct {
	Width  float64
	Height float64
	Theme  ggbar.Theme
	Bar    ggbar.Properties
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Theme:  ggbar.DefaultTheme(),
	}
}

// Validate checks the canvas size and that the bar resolves.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("width and height must be positive, got %vx%v", c.Width, c.Height)
	}
	if _, err := ggbar.Resolve(c.Bar, c.Theme); err != nil {
		return err
	}
	return nil
}

// Style resolves the bar against the theme.
func (c *Config) Style() (ggbar.Style, error) {
	return ggbar.Resolve(c.Bar, c.Theme)
}

func fromRaw(raw RawConfig) (*Config, error) {
	cfg := Default()
	if raw.Width != nil {
		cfg.Width = *raw.Width
	}
	if raw.Height != nil {
		cfg.Height = *raw.Height
	}

	theme, err := convertProperties(raw.Theme)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	cfg.Theme = ggbar.Theme{Properties: theme}

	bar, err := convertProperties(raw.Bar)
	if err != nil {
		return nil, fmt.Errorf("bar: %w", err)
	}
	cfg.Bar = bar

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func convertProperties(r RawProperties) (ggbar.Properties, error) {
	p := ggbar.Properties{
		Value:          r.Value,
		MaxValue:       r.MaxValue,
		BorderWidth:    r.BorderWidth,
		BarBorderWidth: r.BarBorderWidth,
		Clip:           r.Clip,
		Ticks:          r.Ticks,
		TicksGap:       r.TicksGap,
		TicksSize:      r.TicksSize,
		Vertical:       r.Vertical,
		Margins:        convertInsets(r.Margins),
		Paddings:       convertInsets(r.Paddings),
	}

	var errs []error
	colors := []struct {
		key string
		src *string
		dst **gg.RGBA
	}{
		{"border_color", r.BorderColor, &p.BorderColor},
		{"bar_border_color", r.BarBorderColor, &p.BarBorderColor},
		{"background_color", r.BackgroundColor, &p.BackgroundColor},
		{"color", r.ForegroundColor, &p.ForegroundColor},
		{"ticks_color", r.TicksColor, &p.TicksColor},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		col, err := ggbar.ParseColor(*c.src)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.key, err))
			continue
		}
		*c.dst = &col
	}

	var err error
	if p.Shape, err = convertShape(r.Shape); err != nil {
		errs = append(errs, fmt.Errorf("shape: %w", err))
	}
	if p.BarShape, err = convertShape(r.BarShape); err != nil {
		errs = append(errs, fmt.Errorf("bar_shape: %w", err))
	}
	return p, errors.Join(errs...)
}

func convertInsets(r *RawInsets) *ggbar.Insets {
	if r == nil {
		return nil
	}
	get := func(v *float64) float64 {
		if v == nil {
			return 0
		}
		return *v
	}
	return &ggbar.Insets{
		Top:    get(r.Top),
		Bottom: get(r.Bottom),
		Left:   get(r.Left),
		Right:  get(r.Right),
	}
}

func convertShape(r *RawShape) (*ggbar.Shape, error) {
	if r == nil {
		return nil, nil
	}
	kind, err := ggbar.ParseShapeKind(r.Kind)
	if err != nil {
		return nil, err
	}
	sh := ggbar.Shape{Kind: kind}
	if r.Radius != nil {
		sh.Radius = *r.Radius
	}
	return &sh, nil
}
