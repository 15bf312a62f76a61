package ggbar

import "errors"

var (
	// ErrInvalidMaxValue is returned when MaxValue is zero, negative or NaN.
	// A ratio cannot be computed against such a maximum.
	ErrInvalidMaxValue = errors.New("ggbar: max value must be positive")

	// ErrInvalidColor is returned by ParseColor for malformed color strings.
	ErrInvalidColor = errors.New("ggbar: invalid color")

	// ErrUnknownShape is returned by ParseShapeKind for unregistered names.
	ErrUnknownShape = errors.New("ggbar: unknown shape")

	// ErrNilSurface is returned when Render is called without a surface.
	ErrNilSurface = errors.New("ggbar: nil surface")
)

// ErrInvalidSize is returned by Render for NaN or infinite extents.
var ErrInvalidSize = errors.New("ggbar: size must be finite")

// ErrInvalidStyle is returned when a geometric style value (a width, an
// inset, a tick size or a shape radius) is NaN or infinite.
var ErrInvalidStyle = errors.New("ggbar: style value must be finite")
