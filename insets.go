package ggbar

// Insets is four-sided spacing around a box.
// Use Uniform for the common case of equal sides.
type Insets struct {
	Top, Bottom, Left, Right float64
}

// Uniform returns Insets with all four sides set to v.
func Uniform(v float64) Insets {
	return Insets{Top: v, Bottom: v, Left: v, Right: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// IsZero reports whether all sides are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}
