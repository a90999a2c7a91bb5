package geom

const (
	// CameraDistance is how far the pinhole sits from the cube centre.
	CameraDistance = 3.0
	// FocalScale converts view-space units to pixels.
	FocalScale = 220.0
)

// Project maps a rotated point onto a viewport of the given size. The
// returned Z is the input Z unchanged so triangles can be ordered by
// rotated-space depth.
//
// p.Z+CameraDistance must not be zero. The cube spans [-1, 1] on every axis
// so this never happens with the fixed camera distance.
func Project(p Vec3, viewportW, viewportH float64) Vec3 {
	scale := FocalScale / (p.Z + CameraDistance)
	return Vec3{
		X: p.X*scale + viewportW/2,
		Y: -p.Y*scale + viewportH/2,
		Z: p.Z,
	}
}
