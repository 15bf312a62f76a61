package ggbar

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

func TestResolve_Defaults(t *testing.T) {
	st, err := Resolve(Properties{}, DefaultTheme())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if st != DefaultStyle() {
		t.Errorf("Resolve(empty) = %+v, want DefaultStyle()", st)
	}
	if !st.Clip {
		t.Error("expected clip to default to true")
	}
	if st.TicksGap != 1 || st.TicksSize != 4 {
		t.Errorf("ticks gap/size = %v/%v, want 1/4", st.TicksGap, st.TicksSize)
	}
	if st.MaxValue != 1 {
		t.Errorf("MaxValue = %v, want 1", st.MaxValue)
	}
}

func TestResolve_Precedence(t *testing.T) {
	red, green := gg.Hex("#f00"), gg.Hex("#0f0")
	theme := Theme{Properties: Properties{
		BorderWidth:     Ptr(3.0),
		BackgroundColor: &red,
		Clip:            Ptr(false),
		Margins:         Ptr(Uniform(2)),
		TicksSize:       Ptr(8.0),
	}}
	explicit := Properties{
		BorderWidth:     Ptr(1.0),
		BackgroundColor: &green,
	}

	st, err := Resolve(explicit, theme)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if st.BorderWidth != 1 {
		t.Errorf("BorderWidth = %v, want explicit 1", st.BorderWidth)
	}
	if st.BackgroundColor != green {
		t.Errorf("BackgroundColor = %v, want explicit green", st.BackgroundColor)
	}
	if st.Clip {
		t.Error("Clip = true, want theme false")
	}
	if st.Margins != Uniform(2) {
		t.Errorf("Margins = %v, want theme uniform 2", st.Margins)
	}
	if st.TicksSize != 8 {
		t.Errorf("TicksSize = %v, want theme 8", st.TicksSize)
	}
	if st.TicksGap != 1 {
		t.Errorf("TicksGap = %v, want default 1", st.TicksGap)
	}
}

func TestResolve_BorderColorAbsence(t *testing.T) {
	st, err := Resolve(Properties{BorderWidth: Ptr(4.0)}, DefaultTheme())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if _, ok := st.BorderColor.Get(); ok {
		t.Error("expected border color to be absent")
	}

	black := gg.Hex("#000")
	st, err = Resolve(Properties{}, Theme{Properties: Properties{BorderColor: &black}})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if c, ok := st.BorderColor.Get(); !ok || c != black {
		t.Errorf("BorderColor = %v, %v; want theme black", c, ok)
	}
}

func TestResolve_BarBorderWidthChain(t *testing.T) {
	tests := []struct {
		name     string
		explicit Properties
		theme    Properties
		want     float64
	}{
		{"unset", Properties{}, Properties{}, 0},
		{"theme border", Properties{}, Properties{BorderWidth: Ptr(2.0)}, 2},
		{"explicit border beats theme border", Properties{BorderWidth: Ptr(1.0)}, Properties{BorderWidth: Ptr(2.0)}, 1},
		{"theme bar border beats explicit border", Properties{BorderWidth: Ptr(1.0)}, Properties{BarBorderWidth: Ptr(5.0)}, 5},
		{"explicit bar border wins", Properties{BarBorderWidth: Ptr(7.0)}, Properties{BarBorderWidth: Ptr(5.0)}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Resolve(tt.explicit, Theme{Properties: tt.theme})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if st.BarBorderWidth != tt.want {
				t.Errorf("BarBorderWidth = %v, want %v", st.BarBorderWidth, tt.want)
			}
		})
	}
}

func TestResolve_TicksColorChain(t *testing.T) {
	blue, white, grey := gg.Hex("#00f"), gg.Hex("#fff"), gg.Hex("#888")
	tests := []struct {
		name     string
		explicit Properties
		theme    Properties
		want     gg.RGBA
	}{
		{"default", Properties{}, Properties{}, defaultTicks},
		{"theme background is not used", Properties{}, Properties{BackgroundColor: &blue}, defaultTicks},
		{"explicit background", Properties{BackgroundColor: &blue}, Properties{}, blue},
		{"theme ticks color", Properties{BackgroundColor: &blue}, Properties{TicksColor: &grey}, grey},
		{"explicit ticks color", Properties{TicksColor: &white}, Properties{TicksColor: &grey}, white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := Resolve(tt.explicit, Theme{Properties: tt.theme})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if st.TicksColor != tt.want {
				t.Errorf("TicksColor = %v, want %v", st.TicksColor, tt.want)
			}
		})
	}
}

func TestResolve_RejectsMaxValue(t *testing.T) {
	for _, max := range []float64{0, -2} {
		_, err := Resolve(Properties{MaxValue: Ptr(max)}, DefaultTheme())
		if !errors.Is(err, ErrInvalidMaxValue) {
			t.Errorf("Resolve(max=%v) error = %v, want ErrInvalidMaxValue", max, err)
		}
	}
}

func TestStyle_Validate(t *testing.T) {
	if err := DefaultStyle().Validate(); err != nil {
		t.Errorf("DefaultStyle().Validate() = %v", err)
	}
	var zero Style
	if err := zero.Validate(); !errors.Is(err, ErrInvalidMaxValue) {
		t.Errorf("zero Style Validate() = %v, want ErrInvalidMaxValue", err)
	}

	withNaNValue := DefaultStyle()
	withNaNValue.Value = math.NaN()
	if err := withNaNValue.Validate(); err != nil {
		t.Errorf("Validate() with NaN value = %v, want nil", err)
	}
}

func TestStyle_ValidateNonFinite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name   string
		modify func(*Style)
	}{
		{"border_width", func(st *Style) { st.BorderWidth = inf }},
		{"bar_border_width", func(st *Style) { st.BarBorderWidth = nan }},
		{"ticks_gap", func(st *Style) { st.TicksGap = nan }},
		{"ticks_size", func(st *Style) { st.TicksSize = -inf }},
		{"shape radius", func(st *Style) { st.Shape.Radius = nan }},
		{"bar_shape radius", func(st *Style) { st.BarShape.Radius = inf }},
		{"margins top", func(st *Style) { st.Margins.Top = nan }},
		{"paddings right", func(st *Style) { st.Paddings.Right = inf }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultStyle()
			tt.modify(&st)
			err := st.Validate()
			if !errors.Is(err, ErrInvalidStyle) {
				t.Fatalf("Validate() = %v, want ErrInvalidStyle", err)
			}
			if !strings.Contains(err.Error(), tt.name) {
				t.Errorf("Validate() = %q, want it to name %q", err, tt.name)
			}
		})
	}
}

func TestResolve_RejectsNonFinite(t *testing.T) {
	_, err := Resolve(Properties{TicksSize: Ptr(math.NaN())}, DefaultTheme())
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Resolve() error = %v, want ErrInvalidStyle", err)
	}
	th := Theme{Properties{Margins: Ptr(Uniform(math.Inf(1)))}}
	if _, err := Resolve(Properties{}, th); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("Resolve() with theme margins error = %v, want ErrInvalidStyle", err)
	}
}
