package platform

import "github.com/hajimehoshi/ebiten/v2"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Resizable   bool
}

// Apply configures the ebiten window. Call before ebiten.RunGame.
func (cfg WindowConfig) Apply() {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.WidthPx, cfg.HeightPx)
	if cfg.MinWidthPx > 0 || cfg.MinHeightPx > 0 {
		minW, minH := cfg.MinWidthPx, cfg.MinHeightPx
		if minW <= 0 {
			minW = -1
		}
		if minH <= 0 {
			minH = -1
		}
		ebiten.SetWindowSizeLimits(minW, minH, -1, -1)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}
