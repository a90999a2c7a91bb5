package render

import (
	"image"
	"image/color"
)

// Canvas is a drawable frame.
type Canvas interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillPolygon(pts []image.Point, c color.RGBA) error
	StrokePolygon(pts []image.Point, c color.RGBA, width float64) error
	// RGBA exposes the frame's pixels. Callers must not retain it past the
	// next draw call.
	RGBA() *image.RGBA
}

var (
	_ Canvas = (*FrameBuffer)(nil)
	_ Canvas = (*SmoothCanvas)(nil)
)
