package render

import (
	"fmt"
	"image"
	"image/color"

	"spincube/internal/geom"
)

type Style struct {
	Background color.RGBA
	Fill       color.RGBA
	Edge       color.RGBA
	LineWidth  float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Fill:       color.RGBA{R: 150, G: 0, B: 200, A: 255},
		Edge:       color.RGBA{R: 15, G: 25, B: 130, A: 255},
		LineWidth:  2,
	}
}

// ScreenPoints truncates the triangle's corners to pixel positions.
func ScreenPoints(t geom.Triangle) [3]image.Point {
	return [3]image.Point{
		{X: int(t.A.X), Y: int(t.A.Y)},
		{X: int(t.B.X), Y: int(t.B.Y)},
		{X: int(t.C.X), Y: int(t.C.Y)},
	}
}

// Rasterize draws tris in slice order. Each triangle is filled unless
// wireframe is set, then outlined.
func Rasterize(c Canvas, tris []geom.Triangle, wireframe bool, s Style) error {
	for i, t := range tris {
		pts := ScreenPoints(t)
		if !wireframe {
			if err := c.FillPolygon(pts[:], s.Fill); err != nil {
				return fmt.Errorf("triangle %d: %w", i, err)
			}
		}
		if err := c.StrokePolygon(pts[:], s.Edge, s.LineWidth); err != nil {
			return fmt.Errorf("triangle %d: %w", i, err)
		}
	}
	return nil
}
