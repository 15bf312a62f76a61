// Package vector records progress bars as gg recordings so they can be
// played back to any registered recording backend.
//
// The built-in "raster" backend is always registered. PDF and SVG output
// become available by importing github.com/gogpu/gg-pdf or
// github.com/gogpu/gg-svg for their side effects.
//
//	r, err := vector.Record(200, 24, style)
//	if err != nil {
//	    return err
//	}
//	return vector.Export(r, "raster", w)
package vector

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	_ "github.com/gogpu/gg/recording/backends/raster" // registers "raster"

	"github.com/gogpu/ggbar"
)

// ErrNotWritable is returned by Export when the backend cannot stream its
// output to an io.Writer.
var ErrNotWritable = errors.New("vector: backend does not support writing")

// Surface adapts a recording.Recorder to ggbar.Surface.
type Surface struct {
	rec *recording.Recorder
}

var _ ggbar.Surface = (*Surface)(nil)

// NewSurface creates a Surface recording onto a width x height canvas.
func NewSurface(width, height int) *Surface {
	return &Surface{rec: recording.NewRecorder(width, height)}
}

// Recorder returns the underlying recorder.
func (s *Surface) Recorder() *recording.Recorder { return s.rec }

// Finish ends recording. The Surface must not be used afterwards.
func (s *Surface) Finish() *recording.Recording { return s.rec.FinishRecording() }

func (s *Surface) Push()                  { s.rec.Push() }
func (s *Surface) Pop()                   { s.rec.Pop() }
func (s *Surface) Translate(x, y float64) { s.rec.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.rec.Rotate(angle) }

func (s *Surface) SetColor(c color.Color)     { s.rec.SetColor(gg.FromColor(c)) }
func (s *Surface) SetLineWidth(width float64) { s.rec.SetLineWidth(width) }

func (s *Surface) MoveTo(x, y float64) { s.rec.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64) { s.rec.LineTo(x, y) }
func (s *Surface) ClosePath()          { s.rec.ClosePath() }

func (s *Surface) DrawRectangle(x, y, w, h float64) { s.rec.DrawRectangle(x, y, w, h) }

func (s *Surface) DrawRoundedRectangle(x, y, w, h, r float64) {
	s.rec.DrawRoundedRectangle(x, y, w, h, r)
}

func (s *Surface) DrawEllipse(x, y, rx, ry float64) { s.rec.DrawEllipse(x, y, rx, ry) }

// The recorder cannot fail; errors surface at playback.

func (s *Surface) Fill() error         { s.rec.Fill(); return nil }
func (s *Surface) FillPreserve() error { s.rec.FillPreserve(); return nil }
func (s *Surface) Stroke() error       { s.rec.Stroke(); return nil }
func (s *Surface) Clip()               { s.rec.Clip() }

// Record renders st into a new width x height recording.
// The canvas is the size rounded up to whole pixels.
func Record(width, height float64, st ggbar.Style) (*recording.Recording, error) {
	s := NewSurface(int(math.Ceil(width)), int(math.Ceil(height)))
	if err := ggbar.Render(s, width, height, st); err != nil {
		return nil, err
	}
	return s.Finish(), nil
}

// Export plays r back to a new instance of the named backend and writes
// the result to w.
func Export(r *recording.Recording, backend string, w io.Writer) error {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotWritable, backend)
	}
	if err := r.Playback(wb); err != nil {
		return fmt.Errorf("vector: playback to %q: %w", backend, err)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("vector: write %q output: %w", backend, err)
	}
	return nil
}

// Backends lists the registered recording backends.
func Backends() []string {
	return recording.Backends()
}
