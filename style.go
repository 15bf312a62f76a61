package ggbar

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Style is the fully resolved input of Render.
// It is a plain value; Render never modifies it.
type Style struct {
	Value    float64
	MaxValue float64

	BorderWidth float64
	BorderColor OptionalColor

	BarBorderWidth float64
	BarBorderColor OptionalColor

	BackgroundColor gg.RGBA
	ForegroundColor gg.RGBA

	Shape    Shape
	BarShape Shape

	// Clip keeps the bar inside the background shape.
	Clip bool

	Margins  Insets
	Paddings Insets

	Ticks      bool
	TicksGap   float64
	TicksSize  float64
	TicksColor gg.RGBA

	// Vertical draws the bar growing from bottom to top.
	Vertical bool
}

// DefaultStyle returns the style used when nothing is set explicitly or by
// a theme.
func DefaultStyle() Style {
	return Style{
		MaxValue:        1,
		BackgroundColor: defaultBackground,
		ForegroundColor: defaultForeground,
		Clip:            true,
		TicksGap:        1,
		TicksSize:       4,
		TicksColor:      defaultTicks,
	}
}

// Validate checks the values Render cannot work with: a maximum that is
// not positive and finite, and any NaN or infinite geometric value.
// Value itself may be NaN or infinite; Ratio clamps it.
func (st Style) Validate() error {
	if math.IsNaN(st.MaxValue) || math.IsInf(st.MaxValue, 0) || st.MaxValue <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMaxValue, st.MaxValue)
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"border_width", st.BorderWidth},
		{"bar_border_width", st.BarBorderWidth},
		{"ticks_gap", st.TicksGap},
		{"ticks_size", st.TicksSize},
		{"shape radius", st.Shape.Radius},
		{"bar_shape radius", st.BarShape.Radius},
		{"margins top", st.Margins.Top},
		{"margins bottom", st.Margins.Bottom},
		{"margins left", st.Margins.Left},
		{"margins right", st.Margins.Right},
		{"paddings top", st.Paddings.Top},
		{"paddings bottom", st.Paddings.Bottom},
		{"paddings left", st.Paddings.Left},
		{"paddings right", st.Paddings.Right},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidStyle, f.name, f.v)
		}
	}
	return nil
}

// Properties holds optional style attributes. A nil field is unset.
// Properties is used both for per-bar values and, through Theme, for the
// shared fallback table.
type Properties struct {
	Value    *float64
	MaxValue *float64

	BorderWidth *float64
	BorderColor *gg.RGBA

	BarBorderWidth *float64
	BarBorderColor *gg.RGBA

	BackgroundColor *gg.RGBA
	ForegroundColor *gg.RGBA
	TicksColor      *gg.RGBA

	Shape    *Shape
	BarShape *Shape

	Clip *bool

	Margins  *Insets
	Paddings *Insets

	Ticks     *bool
	TicksGap  *float64
	TicksSize *float64

	Vertical *bool
}

// Theme is the fallback table consulted for attributes a bar leaves unset.
type Theme struct {
	Properties
}

// DefaultTheme returns an empty theme: every attribute falls through to the
// hard-coded defaults.
func DefaultTheme() Theme {
	return Theme{}
}

// Ptr returns a pointer to v. It is a convenience for filling Properties.
func Ptr[T any](v T) *T {
	return &v
}

// pick returns the first non-nil pointer's value, or def.
func pick[T any](def T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return def
}

func pickColor(ptrs ...*gg.RGBA) OptionalColor {
	for _, p := range ptrs {
		if p != nil {
			return Some(*p)
		}
	}
	return OptionalColor{}
}

// Resolve builds a Style from explicit properties and a theme.
// Every attribute resolves explicit > theme > default, with two chains that
// reach further:
//   - the bar border width falls back to the outer border width
//   - the ticks color falls back to the explicit background color, not the
//     theme's, and then to a translucent black
//
// Resolve returns ErrInvalidMaxValue if the resolved maximum is not
// positive.
func Resolve(p Properties, th Theme) (Style, error) {
	t := th.Properties
	def := DefaultStyle()

	st := Style{
		Value:           pick(def.Value, p.Value, t.Value),
		MaxValue:        pick(def.MaxValue, p.MaxValue, t.MaxValue),
		BorderWidth:     pick(def.BorderWidth, p.BorderWidth, t.BorderWidth),
		BorderColor:     pickColor(p.BorderColor, t.BorderColor),
		BarBorderWidth:  pick(0, p.BarBorderWidth, t.BarBorderWidth, p.BorderWidth, t.BorderWidth),
		BarBorderColor:  pickColor(p.BarBorderColor, t.BarBorderColor),
		BackgroundColor: pick(def.BackgroundColor, p.BackgroundColor, t.BackgroundColor),
		ForegroundColor: pick(def.ForegroundColor, p.ForegroundColor, t.ForegroundColor),
		TicksColor:      pick(def.TicksColor, p.TicksColor, t.TicksColor, p.BackgroundColor),
		Shape:           pick(def.Shape, p.Shape, t.Shape),
		BarShape:        pick(def.BarShape, p.BarShape, t.BarShape),
		Clip:            pick(def.Clip, p.Clip, t.Clip),
		Margins:         pick(def.Margins, p.Margins, t.Margins),
		Paddings:        pick(def.Paddings, p.Paddings, t.Paddings),
		Ticks:           pick(def.Ticks, p.Ticks, t.Ticks),
		TicksGap:        pick(def.TicksGap, p.TicksGap, t.TicksGap),
		TicksSize:       pick(def.TicksSize, p.TicksSize, t.TicksSize),
		Vertical:        pick(def.Vertical, p.Vertical, t.Vertical),
	}
	if err := st.Validate(); err != nil {
		Logger().Warn("ggbar: rejected style", "err", err)
		return Style{}, err
	}
	return st, nil
}
