package canvas

import (
	"image"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/ds124wfegd/digit-canvas/internal/entity"
)

// Defaults mirror the drawing page: a 280x280 canvas downsampled 10:1.
const (
	DefaultSurfaceSize = 280
	DefaultOutputSize  = 28
	DefaultLineWidth   = 16
)

type Options struct {
	SurfaceSize int
	OutputSize  int
	LineWidth   float64
}

func (o Options) withDefaults() Options {
	if o.SurfaceSize <= 0 {
		o.SurfaceSize = DefaultSurfaceSize
	}
	if o.OutputSize <= 0 {
		o.OutputSize = DefaultOutputSize
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultLineWidth
	}
	return o
}

// Surface is a fixed-size freehand drawing raster for a single digit.
// Strokes are rendered immediately as they arrive; only pixels persist.
// Handlers run on multiple goroutines, so all access is mutex-guarded.
type Surface struct {
	mu         sync.Mutex
	dc         *gg.Context
	lineWidth  float64
	drawing    bool
	hasContent bool
	last       entity.Point
}

func NewSurface(opts Options) *Surface {
	opts = opts.withDefaults()
	s := &Surface{
		dc:        gg.NewContext(opts.SurfaceSize, opts.SurfaceSize),
		lineWidth: opts.LineWidth,
	}
	s.reset()
	return s
}

// Reset fills the surface with solid white, restores the stroke style and
// marks the surface empty. Idempotent.
func (s *Surface) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Surface) reset() {
	s.dc.SetRGB(1, 1, 1)
	s.dc.Clear()
	s.dc.SetRGB(0, 0, 0)
	s.dc.SetLineWidth(s.lineWidth)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.SetLineJoin(gg.LineJoinRound)
	s.drawing = false
	s.hasContent = false
}

// BeginStroke starts a new path at p. No-op if a stroke is already active.
func (s *Surface) BeginStroke(p entity.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawing {
		return
	}
	s.drawing = true
	s.hasContent = true
	s.last = p
}

// ExtendStroke renders a line segment from the last point to p.
// No-op if no stroke is active.
func (s *Surface) ExtendStroke(p entity.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.drawing {
		return
	}
	s.dc.DrawLine(s.last.X, s.last.Y, p.X, p.Y)
	s.dc.Stroke()
	s.last = p
}

// EndStroke closes the current path and returns to idle. No-op when idle,
// so a "pointer left surface" event is as safe as a normal pointer-up.
func (s *Surface) EndStroke() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawing = false
}

func (s *Surface) HasContent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasContent
}

// Snapshot returns a pixel copy of the surface. A batch reads the copy, so
// drawing that lands after the snapshot only affects later batches.
func (s *Surface) Snapshot() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imaging.Clone(s.dc.Image())
}
