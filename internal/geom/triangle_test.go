package geom

import (
	"math"
	"testing"
)

func TestBuildFrameProducesTwelveTrianglesForEveryAngle(t *testing.T) {
	for i := 0; i < 700; i++ {
		angle := float64(i) * 0.01
		tris := BuildFrame(angle, 800, 600)
		if len(tris) != 12 {
			t.Fatalf("angle %v: expected 12 triangles, got %d", angle, len(tris))
		}
		perSide := make([]int, 6)
		seen := make(map[int]bool, 12)
		for _, tri := range tris {
			if seen[tri.Face] {
				t.Fatalf("angle %v: face %d emitted twice", angle, tri.Face)
			}
			seen[tri.Face] = true
			perSide[Side(tri.Face)]++
		}
		for side, n := range perSide {
			if n != 2 {
				t.Fatalf("angle %v: side %d has %d triangles", angle, side, n)
			}
		}
	}
}

func TestBuildFrameIsSortedByDescendingDepth(t *testing.T) {
	for _, angle := range []float64{0, 0.01, 0.5, 1, math.Pi / 3, 2.2, 5} {
		tris := BuildFrame(angle, 800, 600)
		for i := 0; i+1 < len(tris); i++ {
			if tris[i].Depth() < tris[i+1].Depth() {
				t.Fatalf("angle %v: depth %v at %d before %v", angle, tris[i].Depth(), i, tris[i+1].Depth())
			}
		}
	}
}

func TestSortBackToFrontIsStable(t *testing.T) {
	tris := []Triangle{
		{A: Vec3{Z: 0}, B: Vec3{Z: 0}, C: Vec3{Z: 0}, Face: 3},
		{A: Vec3{Z: 1}, B: Vec3{Z: 1}, C: Vec3{Z: 1}, Face: 7},
		{A: Vec3{Z: 0}, B: Vec3{Z: 0}, C: Vec3{Z: 0}, Face: 1},
	}
	SortBackToFront(tris)
	if tris[0].Face != 7 || tris[1].Face != 3 || tris[2].Face != 1 {
		t.Fatalf("unexpected order: %d %d %d", tris[0].Face, tris[1].Face, tris[2].Face)
	}
}

func TestBuildFrameAtRestMatchesIdentityProjection(t *testing.T) {
	tris := BuildFrame(0, 800, 600)
	want := [8]Vec3{
		{290, 410, -1},
		{510, 410, -1},
		{510, 190, -1},
		{290, 190, -1},
		{345, 355, 1},
		{455, 355, 1},
		{455, 245, 1},
		{345, 245, 1},
	}
	for _, tri := range tris {
		f := CubeFaces[tri.Face]
		for k, p := range []Vec3{tri.A, tri.B, tri.C} {
			if !near(p, want[f[k]]) {
				t.Fatalf("face %d corner %d: got %v want %v", tri.Face, k, p, want[f[k]])
			}
		}
	}

	// The z=+1 side is drawn first, the z=-1 side (vertex 0 only) last.
	if !tris[0].Contains(6) || !tris[1].Contains(6) || tris[0].Depth() != 1 {
		t.Fatalf("expected the +z side first, got faces %d and %d", tris[0].Face, tris[1].Face)
	}
	last := tris[len(tris)-1]
	if !last.Contains(0) || last.Depth() != -1 {
		t.Fatalf("expected a -z face containing vertex 0 last, got face %d", last.Face)
	}
}
