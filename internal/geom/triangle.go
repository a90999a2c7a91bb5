package geom

import (
	"cmp"
	"slices"
)

// Triangle is one projected face for a single frame.
type Triangle struct {
	A, B, C Vec3
	// Face is the index into CubeFaces this triangle was built from.
	Face int
}

// Depth is the mean Z of the three corners.
func (t Triangle) Depth() float64 {
	return (t.A.Z + t.B.Z + t.C.Z) / 3
}

// Contains reports whether any corner came from CubeVertices[v].
func (t Triangle) Contains(v int) bool {
	f := CubeFaces[t.Face]
	return f[0] == v || f[1] == v || f[2] == v
}

// SortBackToFront orders tris by descending depth so that later triangles
// paint over earlier ones. Equal depths keep their input order.
func SortBackToFront(tris []Triangle) {
	slices.SortStableFunc(tris, func(a, b Triangle) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
}

// BuildFrame rotates and projects every cube face for the given angle and
// viewport, returning the triangles in painter's order.
func BuildFrame(angle, viewportW, viewportH float64) []Triangle {
	return AppendFrame(make([]Triangle, 0, len(CubeFaces)), angle, viewportW, viewportH)
}

// AppendFrame is BuildFrame writing into dst.
func AppendFrame(dst []Triangle, angle, viewportW, viewportH float64) []Triangle {
	m := Rotation(angle)

	var projected [len(CubeVertices)]Vec3
	for i, v := range CubeVertices {
		projected[i] = Project(apply(m, v), viewportW, viewportH)
	}

	start := len(dst)
	for i, f := range CubeFaces {
		dst = append(dst, Triangle{
			A:    projected[f[0]],
			B:    projected[f[1]],
			C:    projected[f[2]],
			Face: i,
		})
	}
	SortBackToFront(dst[start:])
	return dst
}
