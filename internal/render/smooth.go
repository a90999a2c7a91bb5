package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// SmoothCanvas draws with analytic anti-aliasing through gg.
type SmoothCanvas struct {
	dc *gg.Context
	w  int
	h  int
}

func NewSmoothCanvas(w, h int) *SmoothCanvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetLineJoin(gg.LineJoinMiter)
	dc.SetLineCap(gg.LineCapSquare)
	return &SmoothCanvas{dc: dc, w: w, h: h}
}

func (s *SmoothCanvas) Size() (int, int) { return s.w, s.h }

func (s *SmoothCanvas) Clear(c color.RGBA) {
	s.dc.ClearWithColor(gg.FromColor(c))
}

func (s *SmoothCanvas) FillPolygon(pts []image.Point, c color.RGBA) error {
	if len(pts) < 3 {
		return nil
	}
	s.trace(pts)
	s.dc.SetColor(c)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("fill polygon: %w", err)
	}
	return nil
}

func (s *SmoothCanvas) StrokePolygon(pts []image.Point, c color.RGBA, width float64) error {
	if len(pts) < 2 {
		return nil
	}
	if width <= 0 {
		width = 1
	}
	s.trace(pts)
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
	if err := s.dc.Stroke(); err != nil {
		return fmt.Errorf("stroke polygon: %w", err)
	}
	return nil
}

// RGBA views the gg pixmap in place. gg.Context.Image would copy the
// whole frame on every call.
func (s *SmoothCanvas) RGBA() *image.RGBA {
	_ = s.dc.FlushGPU()
	pm := s.dc.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// Close releases the gg context.
func (s *SmoothCanvas) Close() error {
	return s.dc.Close()
}

func (s *SmoothCanvas) trace(pts []image.Point) {
	s.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		s.dc.LineTo(float64(p.X), float64(p.Y))
	}
	s.dc.ClosePath()
}
