package app

import (
	"spincube/internal/engine"
	"spincube/internal/platform"
	"spincube/internal/ui"
)

type Config struct {
	Window platform.WindowConfig
	// ViewportW and ViewportH size the cube viewport below the toolbar.
	ViewportW int
	ViewportH int
	// Buffers is the swap chain length.
	Buffers int
	// Smooth selects the anti-aliased canvas.
	Smooth  bool
	UIScale float32
	Theme   ui.Theme
	Engine  engine.Options
}

func DefaultConfig() Config {
	theme := ui.DefaultTheme()
	const viewportW, viewportH = 800, 600
	return Config{
		Window: platform.WindowConfig{
			Title:       "3D Engine",
			WidthPx:     viewportW,
			HeightPx:    viewportH + theme.ToolbarHeightDp,
			MinWidthPx:  480,
			MinHeightPx: 240,
			Resizable:   true,
		},
		ViewportW: viewportW,
		ViewportH: viewportH,
		Buffers:   3,
		Smooth:    true,
		UIScale:   1,
		Theme:     theme,
		Engine:    engine.DefaultOptions(),
	}
}
