// Package geom holds the cube geometry and the transform, projection and
// depth-ordering stages of the renderer.
package geom

// Vec3 is a plain coordinate. After projection X and Y are screen pixels and
// Z carries the rotated-space depth.
type Vec3 struct {
	X, Y, Z float64
}

// Face indexes three entries of CubeVertices.
type Face [3]int

// CubeVertices is the unit cube centred on the origin.
var CubeVertices = [8]Vec3{
	{-1, -1, -1}, // 0
	{1, -1, -1},  // 1
	{1, 1, -1},   // 2
	{-1, 1, -1},  // 3
	{-1, -1, 1},  // 4
	{1, -1, 1},   // 5
	{1, 1, 1},    // 6
	{-1, 1, 1},   // 7
}

// CubeFaces splits every side of the cube into two triangles.
var CubeFaces = [12]Face{
	{0, 1, 2}, {0, 2, 3}, // z = -1
	{4, 5, 6}, {4, 6, 7}, // z = +1
	{0, 1, 5}, {0, 5, 4}, // y = -1
	{2, 3, 7}, {2, 7, 6}, // y = +1
	{1, 2, 6}, {1, 6, 5}, // x = +1
	{0, 3, 7}, {0, 7, 4}, // x = -1
}

// FacesPerSide is the number of triangles each cube side is split into.
const FacesPerSide = 2

// Side returns the cube side (0..5) that face i belongs to.
func Side(i int) int {
	return i / FacesPerSide
}
