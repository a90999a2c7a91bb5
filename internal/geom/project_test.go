package geom

import "testing"

func TestProjectOriginLandsOnViewportCentre(t *testing.T) {
	got := Project(Vec3{0, 0, 0}, 800, 600)
	if got != (Vec3{400, 300, 0}) {
		t.Fatalf("expected (400, 300, 0), got %v", got)
	}
}

func TestProjectKeepsRotatedDepth(t *testing.T) {
	got := Project(Vec3{1, 1, 1}, 800, 600)
	// scale = 220 / 4
	if got.X != 455 || got.Y != 245 {
		t.Fatalf("unexpected screen point %v", got)
	}
	if got.Z != 1 {
		t.Fatalf("expected depth 1 to pass through, got %v", got.Z)
	}
}

func TestProjectInvertsY(t *testing.T) {
	up := Project(Vec3{0, 1, 0}, 800, 600)
	down := Project(Vec3{0, -1, 0}, 800, 600)
	if up.Y >= down.Y {
		t.Fatalf("positive y should be higher on screen: up=%v down=%v", up.Y, down.Y)
	}
}
