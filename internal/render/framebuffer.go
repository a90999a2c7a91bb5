package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA

	raster *vector.Rasterizer
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FrameBuffer{W: w, H: h, Pixels: make([]uint8, w*h*4)}
}

func (fb *FrameBuffer) Size() (int, int) { return fb.W, fb.H }

// RGBA returns an image that shares the framebuffer's pixel memory.
func (fb *FrameBuffer) RGBA() *image.RGBA {
	return &image.RGBA{Pix: fb.Pixels, Stride: fb.W * 4, Rect: image.Rect(0, 0, fb.W, fb.H)}
}

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	i := (y*fb.W + x) * 4
	return color.RGBA{R: fb.Pixels[i], G: fb.Pixels[i+1], B: fb.Pixels[i+2], A: fb.Pixels[i+3]}
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > fb.W {
		w = fb.W - x
	}
	if y+h > fb.H {
		h = fb.H - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		off := ((y+row)*fb.W + x) * 4
		for col := 0; col < w; col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

func (fb *FrameBuffer) StrokeRect(x, y, w, h, line int, c color.RGBA) {
	if line <= 0 {
		line = 1
	}
	fb.FillRect(x, y, w, line, c)
	fb.FillRect(x, y+h-line, w, line, c)
	fb.FillRect(x, y, line, h, c)
	fb.FillRect(x+w-line, y, line, h, c)
}

// FillPolygon fills the closed polygon through pts. Fewer than three points
// draw nothing.
func (fb *FrameBuffer) FillPolygon(pts []image.Point, c color.RGBA) error {
	if len(pts) < 3 {
		return nil
	}
	z := fb.rasterizer()
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	fb.composite(z, c)
	return nil
}

// StrokePolygon outlines the closed polygon through pts with square-capped
// segments of the given width.
func (fb *FrameBuffer) StrokePolygon(pts []image.Point, c color.RGBA, width float64) error {
	if len(pts) < 2 {
		return nil
	}
	if width <= 0 {
		width = 1
	}
	z := fb.rasterizer()
	drawn := false
	for i := range pts {
		p := pts[i]
		q := pts[(i+1)%len(pts)]
		if segmentQuad(z, p, q, width/2) {
			drawn = true
		}
	}
	if drawn {
		fb.composite(z, c)
	}
	return nil
}

func (fb *FrameBuffer) rasterizer() *vector.Rasterizer {
	if fb.raster == nil {
		fb.raster = vector.NewRasterizer(fb.W, fb.H)
	} else {
		fb.raster.Reset(fb.W, fb.H)
	}
	fb.raster.DrawOp = draw.Over
	return fb.raster
}

func (fb *FrameBuffer) composite(z *vector.Rasterizer, c color.RGBA) {
	dst := fb.RGBA()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// segmentQuad adds the rectangle covering p→q, widened by half on each side
// and extended by half past each end. Every quad is wound the same way so
// overlapping corners accumulate instead of cancelling.
func segmentQuad(z *vector.Rasterizer, p, q image.Point, half float64) bool {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}
	ux, uy := dx/length*half, dy/length*half
	nx, ny := -uy, ux

	x0, y0 := float64(p.X)-ux, float64(p.Y)-uy
	x1, y1 := float64(q.X)+ux, float64(q.Y)+uy

	z.MoveTo(float32(x0+nx), float32(y0+ny))
	z.LineTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.LineTo(float32(x0-nx), float32(y0-ny))
	z.ClosePath()
	return true
}
