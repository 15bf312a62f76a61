package ggbar

import (
	"fmt"
	"math"
	"sort"
	"sync"
)

// ShapeKind identifies a path tracer.
type ShapeKind uint8

// Built-in shape kinds. The zero value is ShapeRectangle.
const (
	ShapeRectangle ShapeKind = iota
	ShapeRoundedRect
	ShapeRoundedBar
	ShapeCircle
	ShapeEllipse
	ShapeHexagon
	ShapeOctogon
	ShapeLosange
	ShapeParallelogram
	ShapePowerline
	ShapeRectangularTag
	ShapeIsoscelesTriangle

	numBuiltinShapes
)

// Shape selects a tracer and carries its single size parameter.
//
// Radius is the corner radius for rounded shapes, the corner cut for
// ShapeOctogon, the skew for ShapeParallelogram and the arrow depth for
// ShapePowerline and ShapeRectangularTag. Zero selects the shape's default.
type Shape struct {
	Kind   ShapeKind
	Radius float64
}

// ShapeFunc traces a closed path fitting the (0, 0, w, h) box into the
// surface's current path. It must not fill, stroke or clip.
type ShapeFunc func(s Surface, w, h float64, sh Shape)

type shapeEntry struct {
	name  string
	trace ShapeFunc
}

var (
	shapesMu sync.RWMutex
	shapes   = map[ShapeKind]shapeEntry{
		ShapeRectangle:         {"rectangle", traceRectangle},
		ShapeRoundedRect:       {"rounded_rect", traceRoundedRect},
		ShapeRoundedBar:        {"rounded_bar", traceRoundedBar},
		ShapeCircle:            {"circle", traceCircle},
		ShapeEllipse:           {"ellipse", traceEllipse},
		ShapeHexagon:           {"hexagon", traceHexagon},
		ShapeOctogon:           {"octogon", traceOctogon},
		ShapeLosange:           {"losange", traceLosange},
		ShapeParallelogram:     {"parallelogram", traceParallelogram},
		ShapePowerline:         {"powerline", tracePowerline},
		ShapeRectangularTag:    {"rectangular_tag", traceRectangularTag},
		ShapeIsoscelesTriangle: {"isosceles_triangle", traceIsoscelesTriangle},
	}
	nextShapeKind = numBuiltinShapes
)

// RegisterShape adds a tracer under name and returns its new kind.
//
// RegisterShape panics if fn is nil, the name is already taken or the kind
// space is exhausted. Like backend registration in gg/recording, it is meant
// to be called from init.
func RegisterShape(name string, fn ShapeFunc) ShapeKind {
	shapesMu.Lock()
	defer shapesMu.Unlock()

	if fn == nil {
		panic("ggbar: RegisterShape func is nil")
	}
	for _, e := range shapes {
		if e.name == name {
			panic("ggbar: RegisterShape called twice for " + name)
		}
	}
	if nextShapeKind == math.MaxUint8 {
		panic("ggbar: too many shapes registered")
	}
	kind := nextShapeKind
	nextShapeKind++
	shapes[kind] = shapeEntry{name: name, trace: fn}
	return kind
}

// String returns the registered name of the kind.
func (k ShapeKind) String() string {
	shapesMu.RLock()
	e, ok := shapes[k]
	shapesMu.RUnlock()
	if !ok {
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
	return e.name
}

// ParseShapeKind returns the kind registered under name.
func ParseShapeKind(name string) (ShapeKind, error) {
	shapesMu.RLock()
	defer shapesMu.RUnlock()
	for k, e := range shapes {
		if e.name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ShapeNames returns all registered shape names, sorted.
func ShapeNames() []string {
	shapesMu.RLock()
	names := make([]string, 0, len(shapes))
	for _, e := range shapes {
		names = append(names, e.name)
	}
	shapesMu.RUnlock()
	sort.Strings(names)
	return names
}

// TraceShape traces sh into the current path of s at (0, 0, w, h).
// Unknown kinds fall back to a rectangle.
func TraceShape(s Surface, sh Shape, w, h float64) {
	shapesMu.RLock()
	e, ok := shapes[sh.Kind]
	shapesMu.RUnlock()
	if !ok {
		Logger().Debug("ggbar: unknown shape, using rectangle", "kind", uint8(sh.Kind))
		e = shapes[ShapeRectangle]
	}
	e.trace(s, w, h, sh)
}

func polygon(s Surface, pts ...float64) {
	s.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		s.LineTo(pts[i], pts[i+1])
	}
	s.ClosePath()
}

// depth returns sh.Radius, or def when unset, clamped to [0, limit].
func depth(sh Shape, def, limit float64) float64 {
	d := sh.Radius
	if d <= 0 {
		d = def
	}
	return math.Max(0, math.Min(d, limit))
}

func traceRectangle(s Surface, w, h float64, _ Shape) {
	s.DrawRectangle(0, 0, w, h)
}

func traceRoundedRect(s Surface, w, h float64, sh Shape) {
	r := sh.Radius
	if r <= 0 {
		r = 10
	}
	s.DrawRoundedRectangle(0, 0, w, h, math.Min(r, math.Min(w, h)/2))
}

func traceRoundedBar(s Surface, w, h float64, _ Shape) {
	s.DrawRoundedRectangle(0, 0, w, h, math.Min(w, h)/2)
}

func traceCircle(s Surface, w, h float64, sh Shape) {
	r := depth(sh, math.Min(w, h)/2, math.Min(w, h)/2)
	s.DrawEllipse(w/2, h/2, r, r)
}

func traceEllipse(s Surface, w, h float64, _ Shape) {
	s.DrawEllipse(w/2, h/2, w/2, h/2)
}

func traceHexagon(s Surface, w, h float64, _ Shape) {
	d := math.Min(h/2, w/2)
	polygon(s,
		d, 0,
		w-d, 0,
		w, h/2,
		w-d, h,
		d, h,
		0, h/2,
	)
}

func traceOctogon(s Surface, w, h float64, sh Shape) {
	c := depth(sh, 10, math.Min(w, h)/2)
	polygon(s,
		c, 0,
		w-c, 0,
		w, c,
		w, h-c,
		w-c, h,
		c, h,
		0, h-c,
		0, c,
	)
}

func traceLosange(s Surface, w, h float64, _ Shape) {
	polygon(s,
		w/2, 0,
		w, h/2,
		w/2, h,
		0, h/2,
	)
}

func traceParallelogram(s Surface, w, h float64, sh Shape) {
	k := depth(sh, h/2, w)
	polygon(s,
		k, 0,
		w, 0,
		w-k, h,
		0, h,
	)
}

func tracePowerline(s Surface, w, h float64, sh Shape) {
	d := depth(sh, h/2, w/2)
	polygon(s,
		0, 0,
		w-d, 0,
		w, h/2,
		w-d, h,
		0, h,
		d, h/2,
	)
}

func traceRectangularTag(s Surface, w, h float64, sh Shape) {
	d := depth(sh, h/2, w)
	polygon(s,
		d, 0,
		w, 0,
		w, h,
		d, h,
		0, h/2,
	)
}

func traceIsoscelesTriangle(s Surface, w, h float64, _ Shape) {
	polygon(s,
		w/2, 0,
		w, h,
		0, h,
	)
}
