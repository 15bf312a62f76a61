package ggbar

import (
	"fmt"
	"math"
)

// Ratio returns clamp(value, 0, maxValue) / maxValue.
//
// A NaN value counts as 0. maxValue must be positive and finite, otherwise
// ErrInvalidMaxValue is returned.
func Ratio(value, maxValue float64) (float64, error) {
	if math.IsNaN(maxValue) || math.IsInf(maxValue, 0) || maxValue <= 0 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidMaxValue, maxValue)
	}
	if math.IsNaN(value) {
		value = 0
	}
	return math.Min(maxValue, math.Max(0, value)) / maxValue, nil
}

// Fit reports the size the bar occupies inside a width x height box.
// A progress bar has no intrinsic size and fills whatever it is given.
func Fit(width, height float64) (float64, float64) {
	return width, height
}

// Render draws a progress bar of width x height at the surface origin.
//
// The background shape is inset by the margins and the outer border, filled
// with the background color and stroked with the border color. The bar is
// then placed inside the border strip and paddings (or, with Clip disabled,
// inside the paddings of the whole box), sized to the value ratio, filled
// and optionally stroked. Ticks are cut over the filled part last.
//
// Render restores the surface transform and clip before returning. Errors
// from the surface are returned as is, wrapped with the failing step.
func Render(s Surface, width, height float64, st Style) error {
	if s == nil {
		return ErrNilSurface
	}
	if !finite(width) || !finite(height) {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, width, height)
	}
	if err := st.Validate(); err != nil {
		return err
	}
	ratio, err := Ratio(st.Value, st.MaxValue)
	if err != nil {
		return err
	}

	s.Push()
	defer s.Pop()

	if st.Vertical {
		// Map the bar's x axis onto the upward y axis.
		s.Translate(0, height)
		s.Rotate(-math.Pi / 2)
		width, height = height, width
	}
	return render(s, width, height, ratio, &st)
}

func render(s Surface, width, height, ratio float64, st *Style) error {
	s.SetLineWidth(1)

	border := st.BorderWidth
	borderColor, ok := st.BorderColor.Get()
	if !ok || border < 0 {
		border = 0
	}

	m := st.Margins
	translate(s, m.Left, m.Top)
	bgW := width - m.Horizontal()
	bgH := height - m.Vertical()

	// Strokes are centered on the path, so half the border sits outside it.
	if border > 0 {
		s.Translate(border/2, border/2)
		bgW -= border
		bgH -= border
		s.SetLineWidth(border)
	}
	bgW, bgH = clampSize(bgW, bgH)

	TraceShape(s, st.Shape, bgW, bgH)
	s.SetColor(st.BackgroundColor.Color())

	drawnW := bgW + border
	drawnH := bgH + border
	if border > 0 {
		if err := s.FillPreserve(); err != nil {
			return fmt.Errorf("ggbar: fill background: %w", err)
		}
		s.SetColor(borderColor.Color())
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("ggbar: stroke border: %w", err)
		}
		drawnW -= 2 * border
		drawnH -= 2 * border
		s.Translate(-border/2, -border/2)
	} else if err := s.Fill(); err != nil {
		return fmt.Errorf("ggbar: fill background: %w", err)
	}

	if st.Clip {
		TraceShape(s, st.Shape, bgW, bgH)
		s.Clip()
		translate(s, border, border)
	} else {
		// Without clipping the background size is irrelevant to the bar.
		translate(s, -m.Left, -m.Top)
		drawnW, drawnH = width, height
	}

	p := st.Paddings
	translate(s, p.Left, p.Top)
	drawnW, drawnH = clampSize(drawnW-p.Horizontal(), drawnH-p.Vertical())

	barLen := drawnW * ratio

	barBorder := st.BarBorderWidth
	barBorderColor, ok := st.BarBorderColor.Get()
	if !ok || barBorder < 0 {
		barBorder = 0
	}
	if barBorder > 0 {
		drawnW, drawnH = clampSize(drawnW-barBorder, drawnH-barBorder)
		s.Translate(barBorder/2, barBorder/2)
	}

	TraceShape(s, st.BarShape, barLen, drawnH)
	s.SetColor(st.ForegroundColor.Color())
	if barBorder > 0 {
		if err := s.FillPreserve(); err != nil {
			return fmt.Errorf("ggbar: fill bar: %w", err)
		}
		s.SetColor(barBorderColor.Color())
		s.SetLineWidth(barBorder)
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("ggbar: stroke bar border: %w", err)
		}
	} else if err := s.Fill(); err != nil {
		return fmt.Errorf("ggbar: fill bar: %w", err)
	}

	if st.Ticks {
		return drawTicks(s, drawnW, drawnH, barLen, border, st)
	}
	return nil
}

// maxTicks bounds the marks one bar may cut.
const maxTicks = 1 << 14

// drawTicks cuts TicksGap wide marks every TicksSize+TicksGap, walking
// back from the inner right edge. Only marks over the filled part are drawn.
func drawTicks(s Surface, drawnW, drawnH, barLen, border float64, st *Style) error {
	step := st.TicksSize + st.TicksGap
	if !finite(step) || step <= 0 || st.TicksGap <= 0 {
		Logger().Debug("ggbar: ticks disabled by non-positive step",
			"size", st.TicksSize, "gap", st.TicksGap)
		return nil
	}
	count := drawnW/step + 1
	if !finite(count) || count > maxTicks {
		Logger().Debug("ggbar: ticks disabled, step too small for width",
			"step", step, "width", drawnW)
		return nil
	}

	n := 0
	for i := 0; i < int(count); i++ {
		offset := drawnW - step*float64(i)
		if offset < 0 {
			break
		}
		if offset <= barLen {
			s.DrawRectangle(offset, border, st.TicksGap, drawnH)
			n++
		}
	}
	if n == 0 {
		return nil
	}
	s.SetColor(st.TicksColor.Color())
	if err := s.Fill(); err != nil {
		return fmt.Errorf("ggbar: fill ticks: %w", err)
	}
	return nil
}

// translate skips no-op offsets so recorded command streams stay minimal.
func translate(s Surface, x, y float64) {
	if x != 0 || y != 0 {
		s.Translate(x, y)
	}
}

// clampSize maps negative and NaN extents to 0.
func clampSize(w, h float64) (float64, float64) {
	if !(w >= 0) || !(h >= 0) {
		Logger().Debug("ggbar: clamped negative extent", "w", w, "h", h)
	}
	return clampExtent(w), clampExtent(h)
}

func clampExtent(v float64) float64 {
	if !(v >= 0) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
