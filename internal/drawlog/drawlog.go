// Package drawlog provides a Surface that records drawing calls as typed
// operations instead of rasterizing them.
//
// A Log is used to assert the exact command sequence a renderer produces and
// to print it for inspection.
package drawlog

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// OpKind identifies a recorded call.
type OpKind uint8

// Recorded call kinds.
const (
	OpPush OpKind = iota
	OpPop
	OpTranslate
	OpRotate
	OpSetColor
	OpSetLineWidth
	OpMoveTo
	OpLineTo
	OpClosePath
	OpRectangle
	OpRoundedRectangle
	OpEllipse
	OpFill
	OpFillPreserve
	OpStroke
	OpClip
)

var opNames = [...]string{
	OpPush:             "Push",
	OpPop:              "Pop",
	OpTranslate:        "Translate",
	OpRotate:           "Rotate",
	OpSetColor:         "SetColor",
	OpSetLineWidth:     "SetLineWidth",
	OpMoveTo:           "MoveTo",
	OpLineTo:           "LineTo",
	OpClosePath:        "ClosePath",
	OpRectangle:        "Rectangle",
	OpRoundedRectangle: "RoundedRectangle",
	OpEllipse:          "Ellipse",
	OpFill:             "Fill",
	OpFillPreserve:     "FillPreserve",
	OpStroke:           "Stroke",
	OpClip:             "Clip",
}

// String returns the call name.
func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "Unknown"
}

// Op is one recorded call. Args holds the numeric arguments in call order;
// Color is set for OpSetColor only.
type Op struct {
	Kind  OpKind
	Args  []float64
	Color gg.RGBA
}

// String formats the op as "Kind arg arg ...".
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())
	if o.Kind == OpSetColor {
		fmt.Fprintf(&b, " %.3f %.3f %.3f %.3f", o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	}
	for _, a := range o.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	}
	return b.String()
}

// Log records calls made through the ggbar Surface method set.
// The zero value is ready to use. A Log is not safe for concurrent use.
type Log struct {
	ops   []Op
	fails map[OpKind]error
}

// New returns an empty Log.
func New() *Log {
	return &Log{}
}

// FailOn makes every later call of kind return err.
// Only OpFill, OpFillPreserve and OpStroke can fail.
func (l *Log) FailOn(kind OpKind, err error) {
	if l.fails == nil {
		l.fails = make(map[OpKind]error)
	}
	l.fails[kind] = err
}

// Ops returns the recorded operations.
func (l *Log) Ops() []Op {
	return l.ops
}

// Kinds returns the kinds of the recorded operations in order.
func (l *Log) Kinds() []OpKind {
	kinds := make([]OpKind, len(l.ops))
	for i, op := range l.ops {
		kinds[i] = op.Kind
	}
	return kinds
}

// Count returns how many ops of kind were recorded.
func (l *Log) Count(kind OpKind) int {
	n := 0
	for _, op := range l.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Index returns the position of the first op of kind, or -1.
func (l *Log) Index(kind OpKind) int {
	for i, op := range l.ops {
		if op.Kind == kind {
			return i
		}
	}
	return -1
}

// Filter returns the ops of kind in order.
func (l *Log) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range l.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards all recorded ops. Injected failures are kept. Slices
// returned by Ops before the call are left intact.
func (l *Log) Reset() {
	l.ops = nil
}

// String returns one op per line.
func (l *Log) String() string {
	var b strings.Builder
	for _, op := range l.ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Log) add(kind OpKind, args ...float64) {
	l.ops = append(l.ops, Op{Kind: kind, Args: args})
}

func (l *Log) addErr(kind OpKind) error {
	l.add(kind)
	return l.fails[kind]
}

func (l *Log) Push()                  { l.add(OpPush) }
func (l *Log) Pop()                   { l.add(OpPop) }
func (l *Log) Translate(x, y float64) { l.add(OpTranslate, x, y) }
func (l *Log) Rotate(angle float64)   { l.add(OpRotate, angle) }

func (l *Log) SetColor(c color.Color) {
	l.ops = append(l.ops, Op{Kind: OpSetColor, Color: gg.FromColor(c)})
}

func (l *Log) SetLineWidth(width float64) { l.add(OpSetLineWidth, width) }
func (l *Log) MoveTo(x, y float64)        { l.add(OpMoveTo, x, y) }
func (l *Log) LineTo(x, y float64)        { l.add(OpLineTo, x, y) }
func (l *Log) ClosePath()                 { l.add(OpClosePath) }

func (l *Log) DrawRectangle(x, y, w, h float64) { l.add(OpRectangle, x, y, w, h) }

func (l *Log) DrawRoundedRectangle(x, y, w, h, r float64) {
	l.add(OpRoundedRectangle, x, y, w, h, r)
}

func (l *Log) DrawEllipse(x, y, rx, ry float64) { l.add(OpEllipse, x, y, rx, ry) }

func (l *Log) Fill() error         { return l.addErr(OpFill) }
func (l *Log) FillPreserve() error { return l.addErr(OpFillPreserve) }
func (l *Log) Stroke() error       { return l.addErr(OpStroke) }
func (l *Log) Clip()               { l.add(OpClip) }
