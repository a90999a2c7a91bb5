// Package app hosts the cube renderer in an ebiten window with a toolbar.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"spincube/internal/engine"
	"spincube/internal/platform"
	"spincube/internal/render"
	"spincube/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
)

const (
	actionToggle    = "toggle_wireframe"
	actionSave      = "save_frame"
	actionCopyFrame = "copy_frame"
	actionCopyStats = "copy_stats"
)

type App struct {
	cfg   Config
	theme ui.Theme

	state  *engine.State
	chain  *platform.SwapChain
	loop   *engine.Loop
	handle *engine.Handle

	toolbarFB *render.FrameBuffer
	toolbar   *ebiten.Image
	viewport  *ebiten.Image

	fonts   fontBank
	layout  ui.Layout
	buttons []ui.Button
	status  string

	screenW int
	screenH int

	imageClipOnce sync.Once
	imageClipErr  error
}

func New(cfg Config) *App {
	factory := platform.FrameBufferCanvas
	if cfg.Smooth {
		factory = platform.SmoothCanvas
	}
	state := engine.NewState()
	chain := platform.NewSwapChain(cfg.ViewportW, cfg.ViewportH, cfg.Buffers, factory)
	return &App{
		cfg:     cfg,
		theme:   cfg.Theme,
		state:   state,
		chain:   chain,
		loop:    engine.New(chain, state, cfg.Engine),
		fonts:   newFontBank(),
		buttons: make([]ui.Button, 0, 4),
		status:  "Ready",
	}
}

// State exposes the render mode flag for the host.
func (a *App) State() *engine.State { return a.state }

// Run opens the window and blocks until it is closed. The render loop runs
// on its own goroutine for the lifetime of the window and has exited by the
// time Run returns.
func (a *App) Run() error {
	a.cfg.Window.Apply()

	h, err := a.loop.Start(context.Background())
	if err != nil {
		return fmt.Errorf("start render loop: %w", err)
	}
	a.handle = h

	runErr := ebiten.RunGame(a)
	loopErr := h.Stop()
	if err := a.chain.Close(); err != nil {
		engine.Logger().Warn("close swap chain", "error", err)
	}
	if runErr != nil {
		return fmt.Errorf("run game loop: %w", runErr)
	}
	if loopErr != nil {
		return fmt.Errorf("render loop: %w", loopErr)
	}
	return nil
}

func (a *App) Update() error {
	if a.handle != nil {
		if err := a.handle.Err(); err != nil {
			return fmt.Errorf("render loop: %w", err)
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyW) {
		a.invokeAction(actionToggle)
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.invokeAction(actionSave)
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.invokeAction(actionCopyStats)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if id, ok := ui.HitTest(a.buttons, x, y); ok {
			a.invokeAction(id)
		}
	}
	return nil
}

func (a *App) buttonSpecs() []ui.ButtonSpec {
	return []ui.ButtonSpec{
		{ID: actionToggle, Label: "Toggle Wireframe", Active: a.state.Wireframe()},
		{ID: actionSave, Label: "Save Frame"},
		{ID: actionCopyFrame, Label: "Copy Frame"},
		{ID: actionCopyStats, Label: "Copy Stats"},
	}
}

func (a *App) invokeAction(id string) {
	log := engine.Logger()
	switch id {
	case actionToggle:
		if a.state.Toggle() {
			a.status = "Wireframe on"
		} else {
			a.status = "Wireframe off"
		}
	case actionSave:
		path, err := a.saveFrameDialog()
		switch {
		case errors.Is(err, dialog.ErrCancelled):
			a.status = "Save cancelled"
		case err != nil:
			a.status = "Save failed: " + err.Error()
			log.Warn("save frame", "error", err)
		default:
			a.status = "Saved " + path
		}
	case actionCopyFrame:
		if err := a.copyFrame(); err != nil {
			a.status = "Copy failed: " + err.Error()
			log.Warn("copy frame", "error", err)
		} else {
			a.status = "Frame copied"
		}
	case actionCopyStats:
		if err := a.copyStats(); err != nil {
			a.status = "Copy failed: " + err.Error()
			log.Warn("copy stats", "error", err)
		} else {
			a.status = "Stats copied"
		}
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	layout := ui.ComputeLayout(w, h, a.theme, a.cfg.UIScale)
	a.layout = layout

	if a.toolbarFB == nil || a.toolbarFB.W != w || a.toolbarFB.H != layout.ToolbarH {
		a.toolbarFB = render.NewFrameBuffer(w, layout.ToolbarH)
		a.toolbar = ebiten.NewImage(a.toolbarFB.W, a.toolbarFB.H)
	}

	face := a.fonts.face(12, false, layout.Scale)
	mx, my := ebiten.CursorPosition()
	measure := func(s string) int { return measureString(face, s) }
	a.buttons = ui.LayoutButtons(layout, a.theme, a.buttonSpecs(), measure, mx, my)

	ui.DrawToolbar(a.toolbarFB, layout, a.buttons, a.theme)
	a.toolbar.WritePixels(a.toolbarFB.Pixels)
	screen.DrawImage(a.toolbar, nil)

	a.chain.View(func(img *image.RGBA) {
		b := img.Bounds()
		if a.viewport == nil || a.viewport.Bounds().Dx() != b.Dx() || a.viewport.Bounds().Dy() != b.Dy() {
			a.viewport = ebiten.NewImage(b.Dx(), b.Dy())
		}
		a.viewport.WritePixels(img.Pix)
	})
	if a.viewport != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, float64(layout.ViewportY))
		screen.DrawImage(a.viewport, op)
	}

	ascent := face.Metrics().Ascent.Round()
	descent := face.Metrics().Descent.Round()
	textH := ascent + descent
	for _, btn := range a.buttons {
		tw := measureString(face, btn.Label)
		x := btn.Rect.Min.X + (btn.Rect.Dx()-tw)/2
		baseline := btn.Rect.Min.Y + (btn.Rect.Dy()+textH)/2 - descent
		text.Draw(screen, btn.Label, face, x, baseline, a.theme.Label)
	}
	baseline := (layout.ToolbarH+textH)/2 - descent
	text.Draw(screen, a.statusLine(), face, ui.StatusX(layout, a.theme, a.buttons), baseline, a.theme.Status)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	if outsideWidth != a.screenW || outsideHeight != a.screenH {
		a.screenW = outsideWidth
		a.screenH = outsideHeight
		layout := ui.ComputeLayout(outsideWidth, outsideHeight, a.theme, a.cfg.UIScale)
		a.chain.Resize(layout.ViewportW, layout.ViewportH)
	}
	return outsideWidth, outsideHeight
}

func (a *App) modeName() string {
	if a.state.Wireframe() {
		return "Wireframe"
	}
	return "Solid"
}

func (a *App) statusLine() string {
	stats := a.loop.Stats()
	return fmt.Sprintf("%s | %.0f FPS | %.2f rad | %s", a.modeName(), stats.FPS(), a.state.Angle(), a.status)
}
