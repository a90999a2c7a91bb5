package app

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Smooth = false
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ViewportW != 800 || cfg.ViewportH != 600 {
		t.Fatalf("expected 800x600 viewport, got %dx%d", cfg.ViewportW, cfg.ViewportH)
	}
	if cfg.Window.HeightPx != 600+cfg.Theme.ToolbarHeightDp {
		t.Fatalf("window height should fit toolbar and viewport, got %d", cfg.Window.HeightPx)
	}
	if cfg.Buffers != 3 {
		t.Fatalf("expected 3 buffers, got %d", cfg.Buffers)
	}
	if cfg.Engine.AngleStep != 0.01 || cfg.Engine.Style.LineWidth != 2 {
		t.Fatalf("unexpected engine options %+v", cfg.Engine)
	}
}

func TestToggleActionFlipsMode(t *testing.T) {
	a := New(testConfig())
	a.invokeAction(actionToggle)
	if !a.State().Wireframe() || a.status != "Wireframe on" {
		t.Fatalf("expected wireframe on, got %v %q", a.State().Wireframe(), a.status)
	}
	if !a.buttonSpecs()[0].Active {
		t.Fatalf("toggle button should show active state")
	}
	a.invokeAction(actionToggle)
	if a.State().Wireframe() || a.status != "Wireframe off" {
		t.Fatalf("expected wireframe off, got %v %q", a.State().Wireframe(), a.status)
	}
}

func TestStatsText(t *testing.T) {
	a := New(testConfig())
	if got := a.statsText(); got != "mode=solid angle=0.0000 fps=0.0 frames=0 presented=0" {
		t.Fatalf("unexpected stats %q", got)
	}
	if err := a.loop.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	a.State().Toggle()
	got := a.statsText()
	if !strings.HasPrefix(got, "mode=wireframe angle=0.0100") || !strings.HasSuffix(got, "frames=1 presented=1") {
		t.Fatalf("unexpected stats after one frame %q", got)
	}
	if !strings.Contains(a.statusLine(), "Wireframe |") {
		t.Fatalf("unexpected status line %q", a.statusLine())
	}
}

func TestCopyFrameWithoutFrame(t *testing.T) {
	a := New(testConfig())
	if err := a.copyFrame(); !errors.Is(err, errNoFrame) {
		t.Fatalf("expected errNoFrame, got %v", err)
	}
}

func TestWritePNGOfPresentedFrame(t *testing.T) {
	a := New(testConfig())
	if err := a.loop.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	snap := a.chain.Snapshot()
	if snap == nil {
		t.Fatalf("expected a presented frame")
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := WritePNG(path, snap); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 600 {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
}

func TestWritePNGBadPath(t *testing.T) {
	a := New(testConfig())
	if err := a.loop.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := WritePNG(path, a.chain.Snapshot()); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}

func TestLayoutResizesViewport(t *testing.T) {
	a := New(testConfig())
	w, h := a.Layout(1000, 740)
	if w != 1000 || h != 740 {
		t.Fatalf("expected layout to keep the outside size, got %dx%d", w, h)
	}
	if vw, vh := a.chain.Size(); vw != 1000 || vh != 700 {
		t.Fatalf("expected 1000x700 viewport, got %dx%d", vw, vh)
	}
}
