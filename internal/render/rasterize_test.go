package render

import (
	"image"
	"image/color"
	"testing"

	"spincube/internal/geom"
)

type drawCall struct {
	op    string
	pts   []image.Point
	color color.RGBA
	width float64
}

type recordingCanvas struct {
	calls []drawCall
}

func (r *recordingCanvas) Size() (int, int)   { return 800, 600 }
func (r *recordingCanvas) Clear(c color.RGBA) { r.calls = append(r.calls, drawCall{op: "clear", color: c}) }
func (r *recordingCanvas) RGBA() *image.RGBA  { return image.NewRGBA(image.Rect(0, 0, 1, 1)) }

func (r *recordingCanvas) FillPolygon(pts []image.Point, c color.RGBA) error {
	r.calls = append(r.calls, drawCall{op: "fill", pts: append([]image.Point(nil), pts...), color: c})
	return nil
}

func (r *recordingCanvas) StrokePolygon(pts []image.Point, c color.RGBA, w float64) error {
	r.calls = append(r.calls, drawCall{op: "stroke", pts: append([]image.Point(nil), pts...), color: c, width: w})
	return nil
}

func TestScreenPointsTruncate(t *testing.T) {
	tri := geom.Triangle{
		A: geom.Vec3{X: 10.9, Y: 20.2},
		B: geom.Vec3{X: 0.5, Y: 99.99},
		C: geom.Vec3{X: 455, Y: 245},
	}
	got := ScreenPoints(tri)
	want := [3]image.Point{{10, 20}, {0, 99}, {455, 245}}
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRasterizeSolidFillsThenStrokes(t *testing.T) {
	rec := &recordingCanvas{}
	style := DefaultStyle()
	tris := geom.BuildFrame(0, 800, 600)
	if err := Rasterize(rec, tris, false, style); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 24 {
		t.Fatalf("expected 24 draw calls, got %d", len(rec.calls))
	}
	for i, tri := range tris {
		fill, stroke := rec.calls[2*i], rec.calls[2*i+1]
		if fill.op != "fill" || fill.color != style.Fill {
			t.Fatalf("call %d: expected fill with %v, got %+v", 2*i, style.Fill, fill)
		}
		if stroke.op != "stroke" || stroke.color != style.Edge || stroke.width != 2 {
			t.Fatalf("call %d: expected 2px edge stroke, got %+v", 2*i+1, stroke)
		}
		pts := ScreenPoints(tri)
		for k := range pts {
			if fill.pts[k] != pts[k] || stroke.pts[k] != pts[k] {
				t.Fatalf("triangle %d corner %d mismatch", i, k)
			}
		}
	}
}

func TestRasterizeWireframeOnlyStrokes(t *testing.T) {
	rec := &recordingCanvas{}
	if err := Rasterize(rec, geom.BuildFrame(1, 800, 600), true, DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 12 {
		t.Fatalf("expected 12 strokes, got %d", len(rec.calls))
	}
	for i, c := range rec.calls {
		if c.op != "stroke" {
			t.Fatalf("call %d: expected stroke, got %s", i, c.op)
		}
	}
}

func TestRasterizeToFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(800, 600)
	style := DefaultStyle()
	fb.Clear(style.Background)
	if err := Rasterize(fb, geom.BuildFrame(0, 800, 600), false, style); err != nil {
		t.Fatal(err)
	}
	// At rest the -z side is drawn last and spans (290,190)-(510,410).
	if got := fb.At(450, 330); got != style.Fill {
		t.Fatalf("expected fill inside the front square, got %v", got)
	}
	if got := fb.At(400, 190); got != style.Edge {
		t.Fatalf("expected edge on the front square's top side, got %v", got)
	}
	if got := fb.At(10, 10); got != style.Background {
		t.Fatalf("expected background in the corner, got %v", got)
	}

	fb.Clear(style.Background)
	if err := Rasterize(fb, geom.BuildFrame(0, 800, 600), true, style); err != nil {
		t.Fatal(err)
	}
	if got := fb.At(480, 290); got != style.Background {
		t.Fatalf("expected wireframe to leave the face interior clear, got %v", got)
	}
}
