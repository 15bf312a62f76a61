package ggbar

import (
	"image/color"

	"github.com/gogpu/gg"
)

// Surface is the drawing target consumed by Render.
//
// The method set is a subset of *gg.Context, so a gg context can be passed
// directly. Other targets (recordings, test logs) adapt to it.
//
// Translate and Rotate compose with the current transform. Push and Pop save
// and restore the transform and clip. Path methods append to the current
// path; Fill, Stroke and Clip consume it, FillPreserve keeps it.
type Surface interface {
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)

	SetColor(c color.Color)
	SetLineWidth(width float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawEllipse(x, y, rx, ry float64)

	Fill() error
	FillPreserve() error
	Stroke() error
	Clip()
}

var _ Surface = (*gg.Context)(nil)
