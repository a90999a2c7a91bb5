package geom

import "github.com/go-gl/mathgl/mgl64"

// Rotation returns the tumble matrix for angle: a Y rotation that maps
// (x, z) to (x cos - z sin, x sin + z cos), followed by a standard X rotation
// by the same angle.
func Rotation(angle float64) mgl64.Mat3 {
	return mgl64.Rotate3DX(angle).Mul3(mgl64.Rotate3DY(-angle))
}

// Rotate applies Rotation(angle) to p.
func Rotate(p Vec3, angle float64) Vec3 {
	return apply(Rotation(angle), p)
}

func apply(m mgl64.Mat3, p Vec3) Vec3 {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
